package catalog

// RiskCategory is the fine-grained grouping below a domain.
type RiskCategory string

const (
	CategoryUnvalidatedAssumptions   RiskCategory = "unvalidated_assumptions"
	CategoryTraceabilityGaps         RiskCategory = "traceability_gaps"
	CategoryDocumentationGaps        RiskCategory = "documentation_gaps"
	CategoryEnvironmentalSensitivity RiskCategory = "environmental_sensitivity"
	CategoryDriftStability           RiskCategory = "drift_stability"
	CategoryBatchVariability         RiskCategory = "batch_variability"
	CategoryQCGaps                   RiskCategory = "qc_gaps"
	CategorySingleSourceSupplier     RiskCategory = "single_source_supplier"
	CategorySupplierChangeRisk       RiskCategory = "supplier_change_risk"
	CategoryDataDefinitionGaps       RiskCategory = "data_definition_gaps"
	CategoryAuditTrailGaps           RiskCategory = "audit_trail_gaps"
	CategoryEscalationGaps           RiskCategory = "escalation_gaps"
)
