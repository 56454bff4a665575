package live

import (
	"log"
	"time"

	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/internal/itinerary"
)

// socketView implements orchestrator.View by emitting events to one connection.
type socketView struct {
	conn *Connection
}

func (v *socketView) ShowMessage(msg domain.Message) {
	v.send(&MessageEvent{BaseMessage: base(TypeMessage), Role: msg.Role, Content: msg.Content})
}

func (v *socketView) ShowLoading(id string) {
	v.send(&LoadingEvent{BaseMessage: base(TypeLoading), ID: id})
}

func (v *socketView) RemoveLoading(id string) {
	v.send(&LoadingEvent{BaseMessage: base(TypeLoadingDone), ID: id})
}

func (v *socketView) SetInputEnabled(enabled bool) {
	v.send(&InputEvent{BaseMessage: base(TypeInput), Enabled: enabled})
}

func (v *socketView) ShowItinerary(it *domain.Itinerary) {
	html, err := itinerary.RenderView(it)
	if err != nil {
		log.Printf("WARN: [%s] failed to render itinerary: %v", v.conn.ID, err)
		return
	}
	v.send(&ItineraryEvent{BaseMessage: base(TypeItinerary), HTML: string(html), Itinerary: it})
}

func (v *socketView) send(event interface{}) {
	if err := v.conn.SendJSON(event); err != nil {
		log.Printf("WARN: [%s] dropped event: %v", v.conn.ID, err)
	}
}

func base(typ string) BaseMessage {
	return BaseMessage{Type: typ, Ts: time.Now().UnixMilli()}
}
