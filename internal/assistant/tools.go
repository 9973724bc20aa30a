package assistant

import (
	"encoding/json"

	"github.com/pneuforte/recruitment-portal/internal/auth"
	"github.com/pneuforte/recruitment-portal/internal/llm"
)

// ToolID names a data-lookup function the model may ask the orchestrator to
// run.
type ToolID string

const (
	ToolListActiveVacancies      ToolID = "list_active_vacancies"
	ToolCompanyInfo              ToolID = "company_info"
	ToolLookupApplicationByTaxID ToolID = "lookup_application_by_tax_id"
	ToolMyApplicationStatus      ToolID = "my_application_status"
	ToolListCandidatesByStage    ToolID = "list_candidates_by_stage"
	ToolSearchCandidatesByName   ToolID = "search_candidates_by_name"
	ToolSystemStatistics         ToolID = "system_statistics"
)

// ToolsFor builds the tool menu for an identity. The menu only hides tools;
// every handler re-checks the gate on execution.
func ToolsFor(identity auth.Identity) []ToolID {
	if identity.IsHR() {
		return []ToolID{
			ToolListActiveVacancies,
			ToolCompanyInfo,
			ToolLookupApplicationByTaxID,
			ToolMyApplicationStatus,
			ToolListCandidatesByStage,
			ToolSearchCandidatesByName,
			ToolSystemStatistics,
		}
	}
	if identity.Anonymous {
		return []ToolID{
			ToolListActiveVacancies,
			ToolCompanyInfo,
			ToolLookupApplicationByTaxID,
		}
	}
	return []ToolID{
		ToolListActiveVacancies,
		ToolCompanyInfo,
		ToolMyApplicationStatus,
	}
}

func objectSchema(properties string) json.RawMessage {
	if properties == "" {
		return json.RawMessage(`{"type":"object","properties":{},"required":[]}`)
	}
	return json.RawMessage(`{"type":"object","properties":{` + properties + `},"required":[]}`)
}

var toolDefinitions = map[ToolID]llm.Tool{
	ToolListActiveVacancies: {
		Type: "function",
		Function: llm.Function{
			Name:        string(ToolListActiveVacancies),
			Description: "Lists all active vacancies currently open for applications",
			Parameters:  objectSchema(""),
		},
	},
	ToolCompanyInfo: {
		Type: "function",
		Function: llm.Function{
			Name:        string(ToolCompanyInfo),
			Description: "Returns information about the company: culture, benefits and the selection process",
			Parameters:  objectSchema(""),
		},
	},
	ToolLookupApplicationByTaxID: {
		Type: "function",
		Function: llm.Function{
			Name:        string(ToolLookupApplicationByTaxID),
			Description: "Looks up applications by the applicant's national tax id (11 digits). The tax id is masked in the result.",
			Parameters:  objectSchema(`"tax_id":{"type":"string","description":"The applicant's 11-digit national tax id"}`),
		},
	},
	ToolMyApplicationStatus: {
		Type: "function",
		Function: llm.Function{
			Name:        string(ToolMyApplicationStatus),
			Description: "Returns the status of the current user's applications",
			Parameters:  objectSchema(""),
		},
	},
	ToolListCandidatesByStage: {
		Type: "function",
		Function: llm.Function{
			Name:        string(ToolListCandidatesByStage),
			Description: "Lists candidates filtered by pipeline stage (submitted, screening, interview, technical_test, finished, rejected)",
			Parameters:  objectSchema(`"stage":{"type":"string","enum":["submitted","screening","interview","technical_test","finished","rejected"],"description":"Pipeline stage"}`),
		},
	},
	ToolSearchCandidatesByName: {
		Type: "function",
		Function: llm.Function{
			Name:        string(ToolSearchCandidatesByName),
			Description: "Searches candidates by name (partial, case-insensitive)",
			Parameters:  objectSchema(`"name":{"type":"string","description":"Name or part of the candidate's name"}`),
		},
	},
	ToolSystemStatistics: {
		Type: "function",
		Function: llm.Function{
			Name:        string(ToolSystemStatistics),
			Description: "Returns overall system statistics (total candidates, vacancies, distribution per stage)",
			Parameters:  objectSchema(""),
		},
	},
}

// Definitions maps a tool menu to the wire format sent to the model.
func Definitions(menu []ToolID) []llm.Tool {
	tools := make([]llm.Tool, 0, len(menu))
	for _, id := range menu {
		if def, ok := toolDefinitions[id]; ok {
			tools = append(tools, def)
		}
	}
	return tools
}
