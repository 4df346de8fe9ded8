package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"careermatch/config"
	"careermatch/utils"
)

// Error taxonomy for gateway calls. Handlers map every one of these to the
// same generic failure for the caller; the distinction exists for logs and
// tests only.
var (
	ErrGatewayNotConfigured = errors.New("AI gateway credential not configured")
	ErrUpstream             = errors.New("AI gateway returned an error")
	ErrNoToolCall           = errors.New("no tool call in AI response")
	ErrBadToolPayload       = errors.New("tool call arguments are not valid JSON")
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolFunction declares the single structured function the model must call.
// Parameters is a JSON-schema object.
type ToolFunction struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type chatTool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

type toolChoice struct {
	Type     string `json:"type"`
	Function struct {
		Name string `json:"name"`
	} `json:"function"`
}

type chatRequest struct {
	Model      string        `json:"model"`
	Messages   []ChatMessage `json:"messages"`
	Tools      []chatTool    `json:"tools"`
	ToolChoice toolChoice    `json:"tool_choice"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
}

// Gateway is a single-attempt client for the generation backend. No retries,
// no backoff, no caching: every failure is terminal for the request.
type Gateway struct {
	cfg    config.AIConfig
	client *http.Client
	logger *utils.Logger
}

func NewGateway(cfg config.AIConfig) *Gateway {
	return &Gateway{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: utils.NewLogger(),
	}
}

// CallTool sends the messages plus the declared tool schema and returns the
// decoded arguments of the mandatory tool call. The request context is
// propagated so a client disconnect cancels the upstream call.
func (g *Gateway) CallTool(ctx context.Context, messages []ChatMessage, tool ToolFunction) (json.RawMessage, error) {
	if g.cfg.APIKey == "" {
		return nil, ErrGatewayNotConfigured
	}

	reqBody := chatRequest{
		Model:    g.cfg.Model,
		Messages: messages,
		Tools:    []chatTool{{Type: "function", Function: tool}},
	}
	reqBody.ToolChoice.Type = "function"
	reqBody.ToolChoice.Function.Name = tool.Name

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.GatewayURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Rate-limit and billing statuses are folded into the generic
		// upstream failure; the detail stays in server logs.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.logger.Error("AI gateway non-success status", fmt.Errorf("status %d: %s", resp.StatusCode, b))
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(chatResp.Choices) == 0 || len(chatResp.Choices[0].Message.ToolCalls) == 0 {
		return nil, ErrNoToolCall
	}

	args := chatResp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if !json.Valid([]byte(args)) {
		return nil, ErrBadToolPayload
	}

	return json.RawMessage(args), nil
}
