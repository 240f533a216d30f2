package query

// ConsigneeDetailByName looks a consignee up by exact name (no substring
// matching) and returns its full aggregate plus the most recent shipments
// in reverse insertion order.
func (e *Engine) ConsigneeDetailByName(name string) (*ConsigneeDetail, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	group, ok := snap.Index.Group(name)
	if !ok {
		return nil, ErrConsigneeNotFound
	}

	recent := make([]Record, 0, RecentShipmentLimit)
	for i := len(group.Shipments) - 1; i >= 0 && len(recent) < RecentShipmentLimit; i-- {
		recent = append(recent, group.Shipments[i])
	}

	return &ConsigneeDetail{
		Name:            group.Name,
		ShipmentCount:   len(group.Shipments),
		TotalWeight:     group.TotalWeight,
		Carriers:        group.Carriers.Values(),
		Commodities:     group.Commodities.Values(),
		Ports:           group.Ports.Values(),
		FirstActivity:   group.FirstActivity,
		LastActivity:    group.LastActivity,
		RecentShipments: recent,
	}, nil
}
