package api

import "github.com/zalemm/pokerauditor/internal/analyzer"

func toResponse(handID string, analysis *analyzer.Analysis) AuditResponse {
	resp := AuditResponse{HandID: handID, AnalysisID: analysis.AnalysisID, Complete: analysis.Complete}

	if analysis.Error != nil {
		resp.Error = &ErrorDTO{
			Kind:    analysis.Error.Kind.String(),
			Code:    analysis.Error.Kind.Code(),
			Message: analysis.Error.Error(),
		}
		return resp
	}

	if analysis.PrivateByPID != nil {
		resp.PrivateByPID = make(map[string][]CardDTO, len(analysis.PrivateByPID))
		for pid, cards := range analysis.PrivateByPID {
			resp.PrivateByPID[pid] = cardDTOs(cards)
		}
	}
	resp.Public = cardDTOs(analysis.Public)
	resp.Winners = winnerDTOs(analysis.Winners)

	return resp
}
