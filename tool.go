package polymature

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// HandleToolCall runs a tool call with the default engine.
func HandleToolCall(req ToolRequest) ToolResponse { return std.HandleToolCall(req) }

func (e *Engine) HandleToolCall(req ToolRequest) ToolResponse {
	getTree := func(key string) (*Node, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		if _, ok := v.(map[string]interface{}); !ok {
			return nil, fmt.Errorf("param %s must be a tree object", key)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return DecodeTree(raw, e.catalog)
	}

	switch req.Tool {
	case "mature":
		tree, err := getTree("tree")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		v, err := e.Evaluate(tree)
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		return ToolResponse{Result: ValueToJSON(v), String: v.String()}

	case "classify":
		tree, err := getTree("tree")
		if err != nil {
			return ToolResponse{Error: err.Error()}
		}
		t := e.Classify(tree)
		return ToolResponse{Result: t, String: t.String()}

	case "catalog":
		names := e.catalog.Names()
		entries := make([]map[string]interface{}, 0, len(names))
		for _, name := range names {
			code, _ := e.catalog.Lookup(name)
			entry, _ := e.catalog.Entry(code)
			args := make([]string, len(entry.Args))
			for i, a := range entry.Args {
				args[i] = a.String()
			}
			entries = append(entries, map[string]interface{}{
				"name":    entry.Name,
				"arity":   entry.Arity,
				"args":    args,
				"returns": entry.Returns.String(),
			})
		}
		return ToolResponse{Result: entries, String: fmt.Sprintf("%d functions", len(entries))}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("mature", "Evaluate an expression tree to a single number, polynomial, factored polynomial or division result", []string{"tree"}, map[string]string{"tree": "object"}),
		ts("classify", "Return the lattice type of a tree without evaluating it", []string{"tree"}, map[string]string{"tree": "object"}),
		ts("catalog", "List built-in functions with their argument types", []string{}, map[string]string{}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
