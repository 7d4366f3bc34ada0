package create_reservation

import "fmt"

// validateRequest проверяет обязательные поля; правила проживания проверяет domain.ValidateStay
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.CottageID <= 0 {
		return fmt.Errorf("%w: cottageID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	return nil
}
