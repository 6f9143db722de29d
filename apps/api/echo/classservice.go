package echoapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

type classServiceApi struct {
	enrollmentSvc *school.EnrollmentService
	classSvc      *school.ClassService
	subjectSvc    *school.SubjectService
}

func registerClassServiceAPI(
	g *echo.Group,
	enrollmentSvc *school.EnrollmentService,
	classSvc *school.ClassService,
	subjectSvc *school.SubjectService,
) {
	api := classServiceApi{
		enrollmentSvc: enrollmentSvc,
		classSvc:      classSvc,
		subjectSvc:    subjectSvc,
	}

	g.POST("/EnrollStudent", api.enrollStudent)
	g.POST("/UnenrollStudent", api.unenrollStudent)
	g.POST("/CreateClass", api.createClass)
	g.POST("/UpdateClass", api.updateClass)
	g.POST("/DeleteClass", api.deleteClass)
	g.POST("/GetClass", api.getClass)
	g.POST("/ListClasses", api.listClasses)
	g.POST("/GetTeacherClasses", api.getTeacherClasses)
	g.POST("/GetStudentClasses", api.getStudentClasses)
	g.POST("/CreateSubject", api.createSubject)
	g.POST("/ListSubjects", api.listSubjects)
}

// Handlers
//
// A failed business Result is a normal 200 response with success=false;
// HTTP errors are reserved for malformed input and server faults.

func (api *classServiceApi) enrollStudent(ctx echo.Context) error {
	var data EnrollmentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EnrollmentRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	res := api.enrollmentSvc.EnrollStudent(ctx.Request().Context(), data.ClassID, data.StudentID)
	return ctx.JSON(http.StatusOK, res)
}

func (api *classServiceApi) unenrollStudent(ctx echo.Context) error {
	var data EnrollmentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EnrollmentRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	res := api.enrollmentSvc.UnenrollStudent(ctx.Request().Context(), data.ClassID, data.StudentID)
	return ctx.JSON(http.StatusOK, res)
}

func (api *classServiceApi) createClass(ctx echo.Context) error {
	var data school.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	res := api.classSvc.CreateClass(ctx.Request().Context(), data)
	return ctx.JSON(http.StatusOK, res)
}

func (api *classServiceApi) updateClass(ctx echo.Context) error {
	var data struct {
		ClassID int `json:"class_id" validate:"required"`
		school.UpdateClass
	}
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClass")
	}
	if err := data.UpdateClass.Validate(); err != nil {
		return err
	}
	res := api.classSvc.UpdateClass(ctx.Request().Context(), data.ClassID, data.UpdateClass)
	return ctx.JSON(http.StatusOK, res)
}

func (api *classServiceApi) deleteClass(ctx echo.Context) error {
	var data GetClassRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GetClassRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	res := api.classSvc.DeleteClass(ctx.Request().Context(), data.ClassID)
	return ctx.JSON(http.StatusOK, res)
}

func (api *classServiceApi) getClass(ctx echo.Context) error {
	var data GetClassRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GetClassRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	detail, err := api.classSvc.GetClassDetail(ctx.Request().Context(), data.ClassID)
	if err != nil {
		if errors.Cause(err) == school.ErrClassNotFound {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Class with id %d not found", data.ClassID))
		}
		return errors.Wrap(err, "getting class detail")
	}
	return ctx.JSON(http.StatusOK, detail)
}

func (api *classServiceApi) listClasses(ctx echo.Context) error {
	var filter school.ClassFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to ClassFilter")
	}
	summaries, err := api.classSvc.ListClasses(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}
	return ctx.JSON(http.StatusOK, ClassesResponse{Classes: summaries})
}

func (api *classServiceApi) getTeacherClasses(ctx echo.Context) error {
	var data TeacherClassesRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to TeacherClassesRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	classes, err := api.classSvc.GetTeacherClasses(ctx.Request().Context(), data.TeacherID, data.Semester)
	if err != nil {
		return errors.Wrap(err, "querying teacher classes")
	}
	return ctx.JSON(http.StatusOK, classesResponse(classes))
}

func (api *classServiceApi) getStudentClasses(ctx echo.Context) error {
	var data StudentClassesRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentClassesRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	classes, err := api.classSvc.GetStudentClasses(ctx.Request().Context(), data.StudentID, data.Semester)
	if err != nil {
		return errors.Wrap(err, "querying student classes")
	}
	return ctx.JSON(http.StatusOK, classesResponse(classes))
}

func (api *classServiceApi) createSubject(ctx echo.Context) error {
	var data school.NewSubject
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubject")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	res := api.subjectSvc.CreateSubject(ctx.Request().Context(), data)
	return ctx.JSON(http.StatusOK, res)
}

func (api *classServiceApi) listSubjects(ctx echo.Context) error {
	subjects, err := api.subjectSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying subjects")
	}
	return ctx.JSON(http.StatusOK, SubjectsResponse{Subjects: subjects})
}

func classesResponse(classes []school.Class) ClassesResponse {
	summaries := make([]school.ClassSummary, 0, len(classes))
	for i := range classes {
		summaries = append(summaries, classes[i].Summary())
	}
	return ClassesResponse{Classes: summaries}
}
