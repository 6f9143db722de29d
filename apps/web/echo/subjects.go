package echoweb

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

type subjectWeb struct {
	subjectSvc *school.SubjectService
}

func registerSubjectWeb(e *echo.Echo, subjectSvc *school.SubjectService) {
	web := subjectWeb{subjectSvc: subjectSvc}

	e.GET("/subjects", web.list)
	e.POST("/subjects", web.create)
}

func (web *subjectWeb) list(ctx echo.Context) error {
	subjects, err := web.subjectSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"subjects": subjects})
}

func (web *subjectWeb) create(ctx echo.Context) error {
	if callerRole(ctx) != school.RoleAdmin {
		return flashRedirect(ctx, "/subjects", "Only administrators can create subjects.")
	}

	ns := school.NewSubject{
		Code:        ctx.FormValue("code"),
		Name:        ctx.FormValue("name"),
		Description: ctx.FormValue("description"),
	}
	ns.Credits, _ = strconv.Atoi(ctx.FormValue("credits"))

	res := web.subjectSvc.CreateSubject(ctx.Request().Context(), ns)
	return flashRedirect(ctx, "/subjects", res.Message)
}
