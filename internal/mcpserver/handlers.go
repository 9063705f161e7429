package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"principles/internal/card"
	"principles/internal/tip"
)

type principleResult struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Position string `json:"position"`
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleListPrinciples handles the list_principles tool call
func (s *Server) handleListPrinciples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := s.store.All()
	return jsonResult(map[string]interface{}{
		"principles": all,
		"total":      len(all),
	})
}

// handleGetPrinciple handles the get_principle tool call
func (s *Server) handleGetPrinciple(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	p, err := s.store.ByID(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Principle not found: %d", id)), nil
	}
	u := s.renderer.Project(p.ID - 1)
	return jsonResult(principleResult{ID: p.ID, Text: p.Text, Position: u.ProgressLabel()})
}

// handleComposeShare handles the compose_share tool call
func (s *Server) handleComposeShare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetInt("id", 0)

	var u card.Unit
	if id == 0 {
		u = s.renderer.Project(s.store.Len())
	} else {
		p, err := s.store.ByID(id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Principle not found: %d", id)), nil
		}
		u = s.renderer.Project(p.ID - 1)
	}

	req, err := s.templates.ForUnit(u)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to render share text: %v", err)), nil
	}
	return jsonResult(s.share.Prepare(ctx, req))
}

// handleTipLink handles the tip_link tool call
func (s *Server) handleTipLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	amount := s.tip.Default
	if raw := request.GetString("amount", ""); raw != "" {
		parsed, err := tip.ParseAmount(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid amount: %v", err)), nil
		}
		amount = parsed
	}

	payload := tip.Payload{
		RecipientAddress: s.tip.Address,
		RecipientFID:     s.tip.FID,
		Amount:           amount,
	}
	if err := payload.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	token, chain := s.tip.Token, s.tip.ChainID
	if token == "" {
		token = tip.BaseUSDC
	}
	if chain == 0 {
		chain = tip.BaseChainID
	}
	return jsonResult(map[string]interface{}{
		"payload": payload,
		"amount":  amount.String() + " USDC",
		"link":    tip.PaymentLink(token, chain, payload),
	})
}
