package catalog

// Activity selects the domain weight profile for an assessment run.
type Activity string

const (
	ActivityProductDesign         Activity = "product_design"
	ActivityPrototypeDevelopment  Activity = "prototype_development"
	ActivityManufacturingScaleUp  Activity = "manufacturing_scale_up"
	ActivitySupplierSelection     Activity = "supplier_selection"
	ActivityRegulatoryPreparation Activity = "regulatory_preparation"
	ActivityDataCollection        Activity = "data_collection"
	ActivitySystemDesign          Activity = "system_design"
	ActivityProcessOptimisation   Activity = "process_optimisation"
)

// ProjectStage qualifies how strict gate guidance should be for a given
// priority.
type ProjectStage string

const (
	StageConcept    ProjectStage = "concept"
	StageDesign     ProjectStage = "design"
	StagePrototype  ProjectStage = "prototype"
	StageValidation ProjectStage = "validation"
	StageProduction ProjectStage = "production"
)

// Context is the {activity, stage} pair chosen for one assessment run.
// Immutable once constructed from the caller's selection.
type Context struct {
	Activity Activity     `json:"activity"`
	Stage    ProjectStage `json:"stage"`
}

// ParseActivity reports whether s names a known activity.
func ParseActivity(s string) (Activity, bool) {
	switch Activity(s) {
	case ActivityProductDesign, ActivityPrototypeDevelopment, ActivityManufacturingScaleUp,
		ActivitySupplierSelection, ActivityRegulatoryPreparation, ActivityDataCollection,
		ActivitySystemDesign, ActivityProcessOptimisation:
		return Activity(s), true
	}
	return "", false
}

// ParseStage reports whether s names a known project stage.
func ParseStage(s string) (ProjectStage, bool) {
	switch ProjectStage(s) {
	case StageConcept, StageDesign, StagePrototype, StageValidation, StageProduction:
		return ProjectStage(s), true
	}
	return "", false
}
