package leaflet

// StyleFor exports styleFor for testing.
var StyleFor = styleFor

// ClassLabel exports classLabel for testing.
var ClassLabel = classLabel
