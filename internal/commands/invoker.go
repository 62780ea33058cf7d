package commands

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/aleister1102/siftview/internal/common"
	"github.com/aleister1102/siftview/internal/models"
	"github.com/rs/zerolog"
)

// Command names accepted by the Invoker
const (
	CommandReadFile               = "read_file"
	CommandWriteFile              = "write_file"
	CommandDetectContent          = "detect_content"
	CommandDetectSegments         = "detect_segments"
	CommandFormatContentSegmented = "format_content_segmented"
	CommandFormatJSON             = "format_json"
	CommandComputeDiff            = "compute_diff"
	CommandComputeDiffStructured  = "compute_diff_structured"
)

// Request is one host call: a command name and its JSON arguments
type Request struct {
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// Response carries either a result or an error message, never both
type Response struct {
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type pathArgs struct {
	Path string `json:"path"`
}

type writeArgs struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type detectArgs struct {
	Content   string `json:"content"`
	Extension string `json:"extension"`
}

type formatSegmentedArgs struct {
	Content  string           `json:"content"`
	Segments []models.Segment `json:"segments"`
}

type contentArgs struct {
	Content string `json:"content"`
}

type diffArgs struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type handlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Invoker dispatches named commands to the Workbench
type Invoker struct {
	logger    zerolog.Logger
	workbench *Workbench
	handlers  map[string]handlerFunc
}

// NewInvoker creates an Invoker over the given workbench
func NewInvoker(workbench *Workbench, logger zerolog.Logger) *Invoker {
	inv := &Invoker{
		logger:    logger.With().Str("component", "Invoker").Logger(),
		workbench: workbench,
	}
	inv.handlers = map[string]handlerFunc{
		CommandReadFile:               inv.handleReadFile,
		CommandWriteFile:              inv.handleWriteFile,
		CommandDetectContent:          inv.handleDetectContent,
		CommandDetectSegments:         inv.handleDetectSegments,
		CommandFormatContentSegmented: inv.handleFormatContentSegmented,
		CommandFormatJSON:             inv.handleFormatJSON,
		CommandComputeDiff:            inv.handleComputeDiff,
		CommandComputeDiffStructured:  inv.handleComputeDiffStructured,
	}
	return inv
}

// Commands returns the supported command names in sorted order
func (inv *Invoker) Commands() []string {
	names := make([]string, 0, len(inv.handlers))
	for name := range inv.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HandleRequest decodes one JSON request and invokes it
func (inv *Invoker) HandleRequest(ctx context.Context, raw []byte) Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return errorResponse(common.WrapError(err, "invalid request"))
	}
	return inv.Invoke(ctx, req.Command, req.Args)
}

// Invoke runs a command. Failures are reported in the response with the
// error text unchanged.
func (inv *Invoker) Invoke(ctx context.Context, command string, args json.RawMessage) Response {
	handler, exists := inv.handlers[command]
	if !exists {
		inv.logger.Warn().Str("command", command).Msg("Unknown command")
		return errorResponse(common.NewError("unknown command: %s", command))
	}

	result, err := handler(ctx, args)
	if err != nil {
		inv.logger.Debug().Err(err).Str("command", command).Msg("Command failed")
		return errorResponse(err)
	}
	return Response{OK: true, Result: result}
}

func (inv *Invoker) handleReadFile(ctx context.Context, raw json.RawMessage) (any, error) {
	var args pathArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Path == "" {
		return nil, common.NewValidationError("path", args.Path, "path is required")
	}
	return inv.workbench.ReadFile(ctx, args.Path)
}

func (inv *Invoker) handleWriteFile(ctx context.Context, raw json.RawMessage) (any, error) {
	var args writeArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Path == "" {
		return nil, common.NewValidationError("path", args.Path, "path is required")
	}
	return nil, inv.workbench.WriteFile(ctx, args.Path, args.Content)
}

func (inv *Invoker) handleDetectContent(_ context.Context, raw json.RawMessage) (any, error) {
	var args detectArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return inv.workbench.DetectContent(args.Content, args.Extension), nil
}

func (inv *Invoker) handleDetectSegments(_ context.Context, raw json.RawMessage) (any, error) {
	var args detectArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return inv.workbench.DetectSegments(args.Content, args.Extension), nil
}

func (inv *Invoker) handleFormatContentSegmented(_ context.Context, raw json.RawMessage) (any, error) {
	var args formatSegmentedArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return inv.workbench.FormatContentSegmented(args.Content, args.Segments), nil
}

func (inv *Invoker) handleFormatJSON(_ context.Context, raw json.RawMessage) (any, error) {
	var args contentArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return inv.workbench.FormatJSON(args.Content)
}

func (inv *Invoker) handleComputeDiff(_ context.Context, raw json.RawMessage) (any, error) {
	var args diffArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return inv.workbench.ComputeDiff(args.Left, args.Right), nil
}

func (inv *Invoker) handleComputeDiffStructured(_ context.Context, raw json.RawMessage) (any, error) {
	var args diffArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return inv.workbench.ComputeDiffStructured(args.Left, args.Right), nil
}

// decodeArgs treats missing arguments as an empty object
func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return common.WrapError(err, "invalid arguments")
	}
	return nil
}

func errorResponse(err error) Response {
	return Response{OK: false, Error: err.Error()}
}
