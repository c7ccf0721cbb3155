package mstgraph

import "errors"

// ErrDisconnected indicates the input graph has more than one connected
// component, so no spanning tree covers every node.
var ErrDisconnected = errors.New("mstgraph: graph is disconnected")
