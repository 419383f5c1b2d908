package domain

import "errors"

// Input validation errors. The density engine never returns these; they are
// raised by callers that guard its preconditions.
var (
	ErrInvalidABV          = errors.New("abv must be between 0 and 100")
	ErrInvalidMassFraction = errors.New("mass fraction must be between 0 and 1")
	ErrInvalidTemperature  = errors.New("temperature must be between -10 and 50 °C")
	ErrInvalidQuantity     = errors.New("quantity must be a positive number")
	ErrNotDiluting         = errors.New("target abv must be lower than source abv")
)
