// Package convert maps between the internal event record and its
// protobuf form on the streaming API.
package convert

import (
	"github.com/ngstokes-code/pmr-market-simulator/api/pb"
	"github.com/ngstokes-code/pmr-market-simulator/event"
)

func ToProto(e event.Event) *pb.Event {
	return &pb.Event{
		TsNs:   e.TsNs,
		Type:   pb.EventType(e.Type),
		Symbol: e.Symbol,
		Price:  e.Price,
		Qty:    e.Qty,
		Side:   uint32(e.Side),
	}
}

func FromProto(p *pb.Event) event.Event {
	return event.Event{
		TsNs:   p.GetTsNs(),
		Type:   event.Type(p.GetType()),
		Symbol: p.GetSymbol(),
		Price:  p.GetPrice(),
		Qty:    p.GetQty(),
		Side:   event.Side(p.GetSide()),
	}
}
