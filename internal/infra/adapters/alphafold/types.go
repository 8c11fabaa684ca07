package alphafold

// Wire types for the AlphaFold3 API.

type chainEntry struct {
	Sequence string `json:"sequence"`
}

type submitRequest struct {
	Sequences      []chainEntry `json:"sequences"`
	ModelPreset    string       `json:"modelPreset"`
	NumPredictions int          `json:"numPredictions"`
	UseTemplates   bool         `json:"useTemplates"`
}

type submitResponse struct {
	JobID string `json:"jobId"`
}

type jobStatusResponse struct {
	Status        string `json:"status"`
	PdbURL        string `json:"pdbUrl"`
	ConfidenceURL string `json:"confidenceUrl"`
}

// confidencePayload is deliberately lenient: absent plddt means no scores,
// absent meanPlddt means 0.0, absent pae means no matrix. Callers depend on
// these defaults.
type confidencePayload struct {
	PLDDT     []float64   `json:"plddt"`
	MeanPLDDT float64     `json:"meanPlddt"`
	PAE       [][]float64 `json:"pae"`
}

