package echoapi

import "github.com/labstack/echo/v4"

// adminMiddleware restricts a route to ADMIN users.
func adminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if claims, err := getContextClaims(ctx); err == nil && claims.IsAdmin {
				return next(ctx)
			}
			return errHttpForbidden
		}
	}
}

// scopedCellID resolves the cell a request may touch: an ADMIN may name any
// cell, a LEADER is always pinned to their own.
func scopedCellID(ctx echo.Context, requested string) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", err
	}
	if claims.IsAdmin {
		return requested, nil
	}
	if requested != "" && requested != claims.CellID {
		return "", errHttpForbidden
	}
	return claims.CellID, nil
}
