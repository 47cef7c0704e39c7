package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
)

// decode unmarshals MCP request arguments into a typed struct.
func decode[T any](req mcp.CallToolRequest) (T, error) {
	var result T
	b, err := json.Marshal(req.GetArguments())
	if err != nil {
		return result, errors.NewInvalidRequest(fmt.Sprintf("marshal args: %v", err))
	}
	if err := json.Unmarshal(b, &result); err != nil {
		return result, errors.NewInvalidRequest(fmt.Sprintf("invalid arguments: %v", err))
	}
	return result, nil
}

// category parses an optional category argument. Empty means "not given".
func category(s string) (*activity.Category, error) {
	if s == "" {
		return nil, nil
	}
	c, err := activity.ParseCategory(s)
	if err != nil {
		return nil, errors.NewInvalidRequest(err.Error())
	}
	return &c, nil
}
