package overpass

import (
	"cmp"
	"slices"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/tidwall/gjson"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/zerr"
)

type osmWay struct {
	id      int64
	highway string
	name    string
	refs    []int64
}

// parseElements extracts nodes and ways from an Overpass JSON response.
func parseElements(body []byte) (map[int64]orb.Point, []osmWay, error) {
	if !gjson.ValidBytes(body) {
		return nil, nil, zerr.New("overpass response is not valid JSON")
	}

	res := gjson.ParseBytes(body)
	if remark := res.Get("remark").String(); strings.Contains(remark, "error") {
		return nil, nil, zerr.With(zerr.New("overpass reported a runtime error"), "remark", remark)
	}

	nodes := make(map[int64]orb.Point)
	var ways []osmWay

	res.Get("elements").ForEach(func(_, el gjson.Result) bool {
		switch el.Get("type").String() {
		case "node":
			nodes[el.Get("id").Int()] = orb.Point{el.Get("lon").Float(), el.Get("lat").Float()}
		case "way":
			w := osmWay{
				id:      el.Get("id").Int(),
				highway: el.Get("tags.highway").String(),
				name:    el.Get("tags.name").String(),
			}
			for _, ref := range el.Get("nodes").Array() {
				w.refs = append(w.refs, ref.Int())
			}
			ways = append(ways, w)
		}
		return true
	})

	return nodes, ways, nil
}

// buildSegments simplifies ways into graph edges. Ways are split at their
// endpoints and at every node shared with another way (or visited twice by
// the same way), so interior shape points collapse into edge geometry.
func buildSegments(nodes map[int64]orb.Point, ways []osmWay) ([]domain.RoadNode, []domain.RoadEdge) {
	usable := make([]osmWay, 0, len(ways))
	for _, w := range ways {
		if len(w.refs) < 2 || w.highway == "" {
			continue
		}
		complete := true
		for _, ref := range w.refs {
			if _, ok := nodes[ref]; !ok {
				complete = false
				break
			}
		}
		if complete {
			usable = append(usable, w)
		}
	}

	uses := make(map[int64]int)
	junction := make(map[int64]bool)
	for _, w := range usable {
		for _, ref := range w.refs {
			uses[ref]++
		}
		junction[w.refs[0]] = true
		junction[w.refs[len(w.refs)-1]] = true
	}
	for id, n := range uses {
		if n > 1 {
			junction[id] = true
		}
	}

	var edges []domain.RoadEdge
	used := make(map[int64]struct{})

	for _, w := range usable {
		start := 0
		for i := 1; i < len(w.refs); i++ {
			if !junction[w.refs[i]] {
				continue
			}
			edges = append(edges, segment(nodes, w, w.refs[start:i+1]))
			used[w.refs[start]] = struct{}{}
			used[w.refs[i]] = struct{}{}
			start = i
		}
	}

	out := make([]domain.RoadNode, 0, len(used))
	for id := range used {
		p := nodes[id]
		out = append(out, domain.RoadNode{ID: id, Lat: p.Lat(), Lon: p.Lon()})
	}
	slices.SortFunc(out, func(a, b domain.RoadNode) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return out, edges
}

func segment(nodes map[int64]orb.Point, w osmWay, refs []int64) domain.RoadEdge {
	line := make(orb.LineString, 0, len(refs))
	var length float64
	for i, ref := range refs {
		p := nodes[ref]
		if i > 0 {
			length += geo.DistanceHaversine(line[i-1], p)
		}
		line = append(line, p)
	}

	return domain.RoadEdge{
		From:         refs[0],
		To:           refs[len(refs)-1],
		WayID:        w.id,
		Highway:      w.highway,
		Name:         w.name,
		LengthMeters: length,
		Geometry:     line,
	}
}
