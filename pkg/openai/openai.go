package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new client implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	apiReq := o.transformRequest(req)

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var envelope apiErrorEnvelope
		if err := json.Unmarshal(bodyBytes, &envelope); err != nil || envelope.Error.Message == "" {
			return nil, &APIError{
				StatusCode: resp.StatusCode,
				Message:    string(bodyBytes),
			}
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Code:       envelope.Error.Code,
			Type:       envelope.Error.Type,
			Message:    envelope.Error.Message,
		}
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&apiResp), nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest converts the request to wire format
func (o *openAIImpl) transformRequest(req *Request) *apiRequest {
	apiReq := &apiRequest{
		Model:     o.model,
		MaxTokens: req.MaxTokens,
		Messages:  make([]apiMessage, 0),
	}

	// Temperature 0 is meaningful here (deterministic classification),
	// so it is sent explicitly rather than omitted.
	temp := req.Temperature
	apiReq.Temperature = &temp

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = "system"
		apiReq.Messages = append(apiReq.Messages, systemMsg)
	}

	for _, msg := range req.Messages {
		apiReq.Messages = append(apiReq.Messages, transformMessage(&msg))
	}

	if len(req.Tools) > 0 {
		apiReq.Tools = make([]apiTool, len(req.Tools))
		for i, tool := range req.Tools {
			apiReq.Tools[i] = apiTool{
				Type: "function",
				Function: apiFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}

		if req.ForcedTool != "" {
			apiReq.ToolChoice = map[string]interface{}{
				"type": "function",
				"function": map[string]interface{}{
					"name": req.ForcedTool,
				},
			}
		} else if req.RequireTool {
			apiReq.ToolChoice = "required"
		}
	}

	return apiReq
}

func transformMessage(msg *Content) apiMessage {
	apiMsg := apiMessage{Role: msg.Role}

	for _, part := range msg.Parts {
		if part.Text != "" {
			if apiMsg.Content != "" {
				apiMsg.Content += "\n"
			}
			apiMsg.Content += part.Text
		}

		if part.FunctionCall != nil {
			argsJSON, _ := json.Marshal(part.FunctionCall.Args)
			id := part.FunctionCall.ID
			if id == "" {
				id = "call_" + part.FunctionCall.Name
			}
			apiMsg.ToolCalls = append(apiMsg.ToolCalls, apiToolCall{
				ID:   id,
				Type: "function",
				Function: apiFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			})
		}

		if part.FunctionResponse != nil {
			apiMsg.Role = "tool"
			apiMsg.ToolCallID = part.FunctionResponse.ID
			if apiMsg.ToolCallID == "" {
				apiMsg.ToolCallID = "call_" + part.FunctionResponse.Name
			}
			responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
			apiMsg.Content = string(responseJSON)
		}
	}

	return apiMsg
}

func (o *openAIImpl) transformResponse(resp *apiResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type != "function" {
			continue
		}
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
			args = make(map[string]interface{})
		}

		message.Parts = append(message.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:   toolCall.ID,
				Name: toolCall.Function.Name,
				Args: args,
			},
		})
	}

	return &Response{
		Content: message,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}
