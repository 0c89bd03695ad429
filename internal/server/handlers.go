package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/sobel-edge-filter/internal/imaging"
	"github.com/ironsheep/sobel-edge-filter/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_sobel_edges").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_sobel_edges":
		return s.handleSobelEdges(ctx, args)
	case "image_sobel_batch":
		return s.handleSobelBatch(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (a imageLoadArgs) validate() error {
	if a.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := a.validate(); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Edge Detection Handlers ===

type sobelEdgesArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

// SobelEdgesResult is returned by image_sobel_edges.
type SobelEdgesResult struct {
	SourceWidth  int                    `json:"source_width"`
	SourceHeight int                    `json:"source_height"`
	Width        int                    `json:"width"`
	Height       int                    `json:"height"`
	Bands        []pipeline.BandSummary `json:"bands"`
	OutputPath   string                 `json:"output_path,omitempty"`
	ImageBase64  string                 `json:"image_base64,omitempty"`
	MimeType     string                 `json:"mime_type,omitempty"`
}

func (s *Server) handleSobelEdges(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a sobelEdgesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	if a.OutputPath != "" {
		rep, err := s.runner.Run(ctx, pipeline.Job{Input: a.Path, Output: a.OutputPath})
		if err != nil {
			return nil, err
		}
		return &SobelEdgesResult{
			SourceWidth:  rep.SourceWidth,
			SourceHeight: rep.SourceHeight,
			Width:        rep.Width,
			Height:       rep.Height,
			Bands:        pipeline.Summarize(rep.Bands),
			OutputPath:   rep.Output,
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res, bounds, err := s.runner.Filter(a.Path)
	if err != nil {
		return nil, err
	}
	encoded, err := imaging.EncodePNGBase64(res.Image)
	if err != nil {
		return nil, err
	}
	return &SobelEdgesResult{
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
		Width:        res.Image.Bounds().Dx(),
		Height:       res.Image.Bounds().Dy(),
		Bands:        pipeline.Summarize(res.Bands),
		ImageBase64:  encoded,
		MimeType:     "image/png",
	}, nil
}

type sobelBatchArgs struct {
	Jobs []pipeline.Job `json:"jobs"`
}

// SobelBatchResult is returned by image_sobel_batch.
type SobelBatchResult struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Reports   []pipeline.Report `json:"reports"`
}

func (s *Server) handleSobelBatch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a sobelBatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Jobs) == 0 {
		return nil, errors.New("jobs must not be empty")
	}
	for i, j := range a.Jobs {
		if j.Input == "" {
			return nil, fmt.Errorf("jobs[%d]: input is required", i)
		}
	}

	reports := s.runner.RunBatch(ctx, a.Jobs, s.workers)
	failed := len(pipeline.Failed(reports))
	return &SobelBatchResult{
		Succeeded: len(reports) - failed,
		Failed:    failed,
		Reports:   reports,
	}, nil
}
