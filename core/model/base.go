// Package model provides the shared estimator bookkeeping for logreg
// transformers.
//
// BaseEstimator tracks whether a transformer has been fitted and holds its
// hyperparameters so they can be reported uniformly:
//
//	type MyTransformer struct {
//		model.BaseEstimator
//		// transformer-specific fields
//	}
//
//	func (m *MyTransformer) Fit(X mat.Matrix) error {
//		// validation
//		m.SetFitted()
//		return nil
//	}
package model

// EstimatorState represents the learning state of a model
type EstimatorState int

const (
	// NotFitted indicates the model is not yet trained
	NotFitted EstimatorState = iota
	// Fitted indicates the model has been trained
	Fitted
)

// BaseEstimator is the base structure for stateful transformers.
type BaseEstimator struct {
	// State holds the fitted state.
	State EstimatorState

	// ModelType identifies the type of model
	ModelType string

	hyperparameters map[string]interface{}
}

// IsFitted returns whether Fit has completed successfully.
//
// Example:
//
//	if !pf.IsFitted() {
//	    if err := pf.Fit(X); err != nil {
//	        log.Fatal(err)
//	    }
//	}
func (e *BaseEstimator) IsFitted() bool {
	return e.State == Fitted
}

// SetFitted marks the estimator as fitted. Called by implementations at the
// end of a successful Fit.
func (e *BaseEstimator) SetFitted() {
	e.State = Fitted
}

// Reset returns the estimator to its initial unfitted state.
func (e *BaseEstimator) Reset() {
	e.State = NotFitted
}

// GetParams returns the hyperparameters. With deep set the map is a copy.
func (e *BaseEstimator) GetParams(deep bool) map[string]interface{} {
	if e.hyperparameters == nil {
		return make(map[string]interface{})
	}

	if !deep {
		return e.hyperparameters
	}

	params := make(map[string]interface{}, len(e.hyperparameters))
	for k, v := range e.hyperparameters {
		params[k] = v
	}
	return params
}

// SetParams merges params into the hyperparameters.
func (e *BaseEstimator) SetParams(params map[string]interface{}) error {
	if e.hyperparameters == nil {
		e.hyperparameters = make(map[string]interface{})
	}

	for k, v := range params {
		e.hyperparameters[k] = v
	}

	return nil
}

// Clone creates a copy of the estimator bookkeeping.
func (e *BaseEstimator) Clone() *BaseEstimator {
	clone := &BaseEstimator{
		State:           e.State,
		ModelType:       e.ModelType,
		hyperparameters: make(map[string]interface{}, len(e.hyperparameters)),
	}

	for k, v := range e.hyperparameters {
		clone.hyperparameters[k] = v
	}

	return clone
}
