// Package validator provides small, composable validation rules.
//
// A Rule couples a lazily evaluated Check function with the ValidationError
// reported when the check fails. Rules are plain values; there is no hidden
// global state, so the package is stateless and goroutine-safe.
//
// # Evaluation
//
// First runs rules in declaration order and returns the first failure as a
// ValidationError, which matches ErrValidationFailed with errors.Is. Later
// rules are not evaluated, so a rule may assume every rule before it passed.
//
// # Usage
//
//	err := validator.First(
//	    validator.MinLen("name", name, 2),
//	    validator.LettersAndSpaces("name", name),
//	    validator.Between("age", age, 0, 120),
//	    validator.ValidEmail("email", email),
//	)
//	if err != nil {
//	    var verr validator.ValidationError
//	    if errors.As(err, &verr) {
//	        // verr.Field, verr.Message
//	    }
//	}
package validator
