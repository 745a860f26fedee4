package sse

import (
	"encoding/json"
	"fmt"
	"io"

	"feed_demo/internal/model"
)

// WriteEvent writes one frame: the sequence as id, the event type as event
// name and the JSON encoded data.
func WriteEvent(w io.Writer, event model.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", event.Seq, event.Type, payload)
	return err
}

func WriteHeartbeat(w io.Writer) error {
	_, err := fmt.Fprint(w, ": ping\n\n")
	return err
}
