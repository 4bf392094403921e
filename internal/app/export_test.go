package app

// WriteReport exposes writeReport for testing.
var WriteReport = writeReport

// WriteCacheInfo exposes writeCacheInfo for testing.
var WriteCacheInfo = writeCacheInfo
