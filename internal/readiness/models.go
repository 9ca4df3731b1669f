package readiness

// Asset is one entry in the asset inventory. Assets are append-only: there
// is no edit path, and ids are assigned sequentially by the registry.
type Asset struct {
	ID           int      `json:"asset_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Owner        string   `json:"owner"`
	Category     string   `json:"category"`
	CIA          []string `json:"cia"`
	PersonalData bool     `json:"personal_data"`
	Access       string   `json:"access"`
}

// Risk is one entry in the risk register. Immutable once created. AssetID is
// a weak reference; the asset may have been absent when the risk was filed.
type Risk struct {
	ID                 string   `json:"risk_id"`
	AssetID            int      `json:"asset_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Owner              string   `json:"owner"`
	Source             string   `json:"source"`
	CIA                []string `json:"cia"`
	Likelihood         string   `json:"likelihood"`
	Impact             string   `json:"impact"`
	Score              int      `json:"score"`
	SuggestedTreatment string   `json:"suggested_treatment"`
	SelectedControls   []string `json:"selected_controls"`
	ResidualLikelihood string   `json:"residual_likelihood"`
	ResidualImpact     string   `json:"residual_impact"`
	ResidualScore      int      `json:"residual_score"`
}
