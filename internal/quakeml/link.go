package quakeml

import "github.com/vvka-141/marsquake/pkg/catalog"

// linker turns decoded event nodes into fully linked events. It is the
// only stage with a document-wide view: the single-station extension
// records live outside the event nodes and must be matched by
// identifier across every event.
type linker struct {
	b          *builder
	sstPicks   []*sstPick
	sstOrigins []*sstOrigin
}

// link builds and cross-references all events of one document. Any
// structural failure aborts the whole document; a partially linked
// event graph is never returned. Dangling identifier references are
// not failures and degrade to unset fields.
func (l *linker) link(eventNodes []*Node) ([]*catalog.Event, error) {
	events := make([]*catalog.Event, 0, len(eventNodes))
	for _, node := range eventNodes {
		ev, err := l.linkEvent(node)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	// Single-station origin records reference base origins by
	// identifier without naming the enclosing event, so resolution
	// scans the whole document.
	for _, rec := range l.sstOrigins {
		l.attachSingleStationOrigin(events, rec)
	}

	return events, nil
}

func (l *linker) linkEvent(node *Node) (*catalog.Event, error) {
	ev, err := l.b.event(node)
	if err != nil {
		return nil, err
	}

	l.attachSingleStationPicks(ev)

	for _, originNode := range node.Children("origin") {
		origin, err := l.b.origin(originNode)
		if err != nil {
			return nil, err
		}
		for _, arrivalNode := range originNode.Children("arrival") {
			arrival, err := l.b.arrival(arrivalNode)
			if err != nil {
				return nil, err
			}
			resolveArrival(ev, arrival)
			if err := origin.AppendArrival(arrival); err != nil {
				return nil, err
			}
		}
		if err := origin.SetParentEvent(ev); err != nil {
			return nil, err
		}
		if err := ev.AppendOrigin(origin); err != nil {
			return nil, err
		}
	}

	for _, magNode := range node.Children("magnitude") {
		mag, err := l.b.magnitude(magNode)
		if err != nil {
			return nil, err
		}
		if mag == nil {
			continue
		}
		if err := ev.AppendMagnitude(mag); err != nil {
			return nil, err
		}
		// The event list owns the canonical value; the owning origin
		// holds the same pointer, so both views stay in sync.
		for _, origin := range ev.Origins() {
			if origin.PublicID() == mag.OriginID() {
				if err := origin.AppendMagnitude(mag); err != nil {
					return nil, err
				}
				break
			}
		}
	}

	// Resolve the preferred caches now so consumers always observe a
	// settled (possibly nil) pointer instead of a reference string.
	ev.PreferredOrigin()
	ev.PreferredMagnitude()

	return ev, nil
}

// attachSingleStationPicks joins the document-wide extension pick
// records onto this event's picks by identifier. Picks hold at most one
// record; the first matching record wins.
func (l *linker) attachSingleStationPicks(ev *catalog.Event) {
	for _, pick := range ev.Picks() {
		for _, rec := range l.sstPicks {
			if rec.pickRef != pick.PublicID() {
				continue
			}
			if pick.SingleStationPick() == nil {
				pick.SetSingleStationPick(rec.pick)
			}
			break
		}
	}
}

// resolveArrival copies timestamp and uncertainty bounds from the
// referenced pick within the same event, and shares the pick's
// single-station record. The pick's bounds replace the arrival's own
// even when the pick carries none. A dangling reference leaves the
// arrival's timestamp unset.
func resolveArrival(ev *catalog.Event, arrival *catalog.Arrival) {
	pick := ev.PickForArrival(arrival)
	if pick == nil {
		return
	}
	arrival.SetTime(pick.Time())
	if v, ok := pick.LowerUncertainty(); ok {
		arrival.SetLowerUncertainty(v)
	} else {
		arrival.ClearLowerUncertainty()
	}
	if v, ok := pick.UpperUncertainty(); ok {
		arrival.SetUpperUncertainty(v)
	} else {
		arrival.ClearUpperUncertainty()
	}
	if sp := pick.SingleStationPick(); sp != nil {
		arrival.SetSingleStationPick(sp)
	}
}

// attachSingleStationOrigin resolves one extension origin record against
// every origin in the document. On match the record attaches to the
// origin, and its point estimates fill the origin's own distance and
// back-azimuth when those were absent.
func (l *linker) attachSingleStationOrigin(events []*catalog.Event, rec *sstOrigin) {
	for _, ev := range events {
		for _, origin := range ev.Origins() {
			if origin.PublicID() != rec.originRef {
				continue
			}
			if origin.SingleStationParameters() == nil {
				origin.SetSingleStationParameters(rec.params)
			}
			if dist, ok := rec.params.Distance(); ok {
				if _, has := origin.Distance(); !has {
					origin.SetDistance(dist)
				}
			}
			if baz, ok := rec.params.BAZ(); ok {
				if _, has := origin.BAZ(); !has {
					origin.SetBAZ(baz)
				}
			}
			return
		}
	}
}
