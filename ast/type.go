package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeSymbol  = nodeTypeValue | 1
	NodeTypeNumber  = nodeTypeValue | 2
	NodeTypeCommand = nodeTypeValue | 4

	NodeTypeList = nodeTypeVector | 1
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol:  "symbol",
	NodeTypeNumber:  "number",
	NodeTypeCommand: "command",
	NodeTypeList:    "list",
}
