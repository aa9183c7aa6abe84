package subgraph

import "errors"

var (
	errUnknownNode = errors.New("subgraph: node not found in parent")
	errNotSelected = errors.New("subgraph: node not selected")
)
