package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

type interactionJSON struct {
	C1             string  `json:"c1"`
	C2             string  `json:"c2"`
	ForwardAt      float64 `json:"forward_at"`
	ReplyAt        float64 `json:"reply_at"`
	ForwardEdgeSeq uint64  `json:"forward_edge_seq"`
	ReplyEdgeSeq   uint64  `json:"reply_edge_seq"`
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// epoch renders fractional seconds without trailing zeros, so whole seconds print as integers.
func epoch(sec float64) string {
	return strconv.FormatFloat(sec, 'f', -1, 64)
}
