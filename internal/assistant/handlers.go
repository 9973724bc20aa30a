package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pneuforte/recruitment-portal/internal/auth"
	"github.com/pneuforte/recruitment-portal/internal/pipeline"
)

var errAccessDenied = fmt.Errorf("access denied")

type toolArgs struct {
	TaxID string `json:"tax_id"`
	Stage string `json:"stage"`
	Name  string `json:"name"`
}

type toolHandler func(ctx context.Context, args toolArgs, identity auth.Identity) (any, error)

// handlers dispatches a tool call. Every handler enforces its own role gate
// again, independent of the menu the model was shown.
func (o *Orchestrator) handlers() map[ToolID]toolHandler {
	return map[ToolID]toolHandler{
		ToolListActiveVacancies:      o.listActiveVacancies,
		ToolCompanyInfo:              o.companyInfo,
		ToolLookupApplicationByTaxID: o.lookupApplicationByTaxID,
		ToolMyApplicationStatus:      o.myApplicationStatus,
		ToolListCandidatesByStage:    o.listCandidatesByStage,
		ToolSearchCandidatesByName:   o.searchCandidatesByName,
		ToolSystemStatistics:         o.systemStatistics,
	}
}

// execute runs one tool call and serializes the result for the model. An
// error becomes this tool's result slot; it never aborts sibling calls.
func (o *Orchestrator) execute(ctx context.Context, name string, rawArgs string, identity auth.Identity) string {
	handler, ok := o.handlers()[ToolID(name)]
	if !ok {
		return toolError("unknown function")
	}

	var args toolArgs
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return toolError("invalid arguments")
		}
	}

	result, err := handler(ctx, args, identity)
	if err != nil {
		return toolError(err.Error())
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return toolError("failed to serialize result")
	}
	return string(payload)
}

func toolError(message string) string {
	payload, _ := json.Marshal(map[string]string{"error": message})
	return string(payload)
}

func (o *Orchestrator) listActiveVacancies(ctx context.Context, _ toolArgs, _ auth.Identity) (any, error) {
	return o.directory.ActiveVacancies(ctx)
}

func (o *Orchestrator) companyInfo(_ context.Context, _ toolArgs, _ auth.Identity) (any, error) {
	return companyInfoFor(o.company), nil
}

func (o *Orchestrator) lookupApplicationByTaxID(ctx context.Context, args toolArgs, _ auth.Identity) (any, error) {
	taxID, err := NormalizeTaxID(args.TaxID)
	if err != nil {
		return nil, err
	}
	applications, err := o.directory.ApplicationsByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	masked := MaskTaxID(taxID)
	for i := range applications {
		applications[i].MaskedTaxID = masked
	}
	return applications, nil
}

func (o *Orchestrator) myApplicationStatus(ctx context.Context, _ toolArgs, identity auth.Identity) (any, error) {
	if identity.Anonymous {
		return nil, errAccessDenied
	}
	return o.directory.ApplicationsByUser(ctx, identity.UserID)
}

func (o *Orchestrator) listCandidatesByStage(ctx context.Context, args toolArgs, identity auth.Identity) (any, error) {
	if !identity.IsHR() {
		return nil, errAccessDenied
	}
	stage, err := pipeline.ParseStage(args.Stage)
	if err != nil {
		return nil, err
	}
	return o.directory.CandidatesByStage(ctx, string(stage))
}

func (o *Orchestrator) searchCandidatesByName(ctx context.Context, args toolArgs, identity auth.Identity) (any, error) {
	if !identity.IsHR() {
		return nil, errAccessDenied
	}
	if args.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return o.directory.CandidatesByName(ctx, args.Name)
}

func (o *Orchestrator) systemStatistics(ctx context.Context, _ toolArgs, identity auth.Identity) (any, error) {
	if !identity.IsHR() {
		return nil, errAccessDenied
	}
	return o.directory.Statistics(ctx)
}

func companyInfoFor(company string) map[string]any {
	return map[string]any{
		"name":        company,
		"description": "We are a leading company in the tire and automotive services sector, committed to excellence and innovation.",
		"values":      []string{"Quality", "Reliability", "Innovation", "Teamwork"},
		"benefits": []string{
			"Health and dental plan",
			"Meal and food allowance",
			"Commuting allowance",
			"Professional development programs",
			"Collaborative work environment",
		},
		"selection_process": map[string]any{
			"stages": []string{
				"Submission - Send in your resume",
				"Screening - Initial review of candidates",
				"Interview - Conversation with HR and managers",
				"Technical Test - Skill assessment (when applicable)",
				"Finish - Feedback and offer",
			},
			"average_time": "2-4 weeks depending on the vacancy",
			"tips": []string{
				"Keep your resume up to date and to the point",
				"Be punctual and professional",
				"Research the company before the interview",
				"Be authentic and highlight relevant experience",
			},
		},
	}
}
