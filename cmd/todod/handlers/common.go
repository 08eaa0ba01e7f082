package handlers

import (
	"encoding/json"
	"math"
	"mime"
	"strconv"

	"github.com/labstack/echo/v4"
	binderr "github.com/ragamarkely/todo-app/pkg/api-types-binding/errors"
)

// ids are "integer" columns of PostgreSQL.
const maxId = math.MaxInt32

// pathId reads a positive integer from path parameter.
//
// It should fit in an "integer" column.
func pathId(c echo.Context, param string) (int, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, binderr.BadRequest(
			"id in path should be a positive integer up to 2147483647: "+strconv.Quote(raw), err,
		)
	}
	return int(id), nil
}

func validId(id int) bool {
	return 0 < id && id <= maxId
}

// bindJSON decodes request body as JSON into dest.
//
// The request should have "Content-Type: application/json".
func bindJSON(c echo.Context, dest any) error {
	req := c.Request()
	mediatype, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	if err != nil || mediatype != echo.MIMEApplicationJSON {
		return binderr.BadRequest(
			"unexpected content type. it should be application/json", err,
		)
	}

	if err := json.NewDecoder(req.Body).Decode(dest); err != nil {
		return binderr.BadRequest("can not understand the requested json", err)
	}
	return nil
}
