package echoweb

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Guilherme-Bernal/distributed-programming-final-project/core/school"
)

type classWeb struct {
	enrollmentSvc *school.EnrollmentService
	classSvc      *school.ClassService
}

func registerClassWeb(e *echo.Echo, enrollmentSvc *school.EnrollmentService, classSvc *school.ClassService) {
	web := classWeb{enrollmentSvc: enrollmentSvc, classSvc: classSvc}

	e.GET("/classes", web.list)
	e.GET("/classes/:id", web.detail)
	e.GET("/my-classes", web.myClasses)
	e.GET("/my-teaching", web.myTeaching)

	e.POST("/classes", web.create)
	e.POST("/classes/:id/edit", web.edit)
	e.POST("/classes/:id/delete", web.delete)
	e.POST("/classes/:id/enroll", web.enroll)
	e.POST("/classes/:id/unenroll", web.unenroll)
}

func (web *classWeb) list(ctx echo.Context) error {
	filter := school.ClassFilter{
		Semester:   ctx.QueryParam("semester"),
		ActiveOnly: true,
	}
	summaries, err := web.classSvc.ListClasses(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"classes": summaries, "current_semester": filter.Semester})
}

func (web *classWeb) detail(ctx echo.Context) error {
	classID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	det, err := web.classSvc.GetClassDetail(ctx.Request().Context(), classID)
	if err != nil {
		if errors.Cause(err) == school.ErrClassNotFound {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Class with id %d not found", classID))
		}
		return errors.Wrap(err, "getting class detail")
	}

	// let a student caller see whether they are already on the roster
	isEnrolled := false
	if callerRole(ctx) == school.RoleStudent {
		for _, std := range det.Students {
			if std.ID == callerProfileID(ctx) {
				isEnrolled = true
				break
			}
		}
	}
	return ctx.JSON(http.StatusOK, echo.Map{"class": det, "is_enrolled": isEnrolled})
}

func (web *classWeb) myClasses(ctx echo.Context) error {
	if callerRole(ctx) != school.RoleStudent {
		return flashRedirect(ctx, "/classes", "This page is only for students.")
	}
	classes, err := web.classSvc.GetStudentClasses(ctx.Request().Context(), callerProfileID(ctx), ctx.QueryParam("semester"))
	if err != nil {
		return errors.Wrap(err, "querying student classes")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"classes": summaries(classes)})
}

func (web *classWeb) myTeaching(ctx echo.Context) error {
	if callerRole(ctx) != school.RoleTeacher {
		return flashRedirect(ctx, "/classes", "This page is only for teachers.")
	}
	classes, err := web.classSvc.GetTeacherClasses(ctx.Request().Context(), callerProfileID(ctx), ctx.QueryParam("semester"))
	if err != nil {
		return errors.Wrap(err, "querying teacher classes")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"classes": summaries(classes)})
}

func (web *classWeb) create(ctx echo.Context) error {
	role := callerRole(ctx)
	if !(role == school.RoleTeacher || role == school.RoleAdmin) {
		return flashRedirect(ctx, "/classes", "Only teachers can create classes.")
	}

	nc := school.NewClass{
		Schedule: ctx.FormValue("schedule"),
		Room:     ctx.FormValue("room"),
		Semester: ctx.FormValue("semester"),
	}
	nc.SubjectID, _ = strconv.Atoi(ctx.FormValue("subject"))
	nc.TeacherID, _ = strconv.Atoi(ctx.FormValue("teacher"))
	nc.MaxStudents, _ = strconv.Atoi(ctx.FormValue("max_students"))
	active := ctx.FormValue("is_active") == "on"
	nc.IsActive = &active

	// a teacher creating a class for themselves may omit the teacher field
	if role == school.RoleTeacher && nc.TeacherID == 0 {
		nc.TeacherID = callerProfileID(ctx)
	}

	res := web.classSvc.CreateClass(ctx.Request().Context(), nc)
	if res.Success {
		return flashRedirect(ctx, fmt.Sprintf("/classes/%d", *res.ClassID), res.Message)
	}
	return flashRedirect(ctx, "/classes", res.Message)
}

func (web *classWeb) edit(ctx echo.Context) error {
	classID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	detailPath := fmt.Sprintf("/classes/%d", classID)

	if ok, msg := web.ownsClass(ctx, classID, "edit"); !ok {
		return flashRedirect(ctx, detailPath, msg)
	}

	uc := school.UpdateClass{
		Schedule: ctx.FormValue("schedule"),
		Room:     ctx.FormValue("room"),
		Semester: ctx.FormValue("semester"),
	}
	uc.MaxStudents, _ = strconv.Atoi(ctx.FormValue("max_students"))
	if v := ctx.FormValue("is_active"); v != "" {
		active := v == "on"
		uc.IsActive = &active
	}

	res := web.classSvc.UpdateClass(ctx.Request().Context(), classID, uc)
	return flashRedirect(ctx, detailPath, res.Message)
}

func (web *classWeb) delete(ctx echo.Context) error {
	classID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}

	if ok, msg := web.ownsClass(ctx, classID, "delete"); !ok {
		return flashRedirect(ctx, fmt.Sprintf("/classes/%d", classID), msg)
	}

	res := web.classSvc.DeleteClass(ctx.Request().Context(), classID)
	if res.Success {
		return flashRedirect(ctx, "/classes", res.Message)
	}
	return flashRedirect(ctx, fmt.Sprintf("/classes/%d", classID), res.Message)
}

func (web *classWeb) enroll(ctx echo.Context) error {
	classID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	detailPath := fmt.Sprintf("/classes/%d", classID)

	if callerRole(ctx) != school.RoleStudent {
		return flashRedirect(ctx, detailPath, "Only students can enroll in classes.")
	}

	res := web.enrollmentSvc.EnrollStudent(ctx.Request().Context(), classID, callerProfileID(ctx))
	return flashRedirect(ctx, detailPath, res.Message)
}

func (web *classWeb) unenroll(ctx echo.Context) error {
	classID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	detailPath := fmt.Sprintf("/classes/%d", classID)

	if callerRole(ctx) != school.RoleStudent {
		return flashRedirect(ctx, detailPath, "Only students can unenroll from classes.")
	}

	res := web.enrollmentSvc.UnenrollStudent(ctx.Request().Context(), classID, callerProfileID(ctx))
	return flashRedirect(ctx, detailPath, res.Message)
}

// ownsClass gates the mutating class pages: the owning teacher or an admin.
func (web *classWeb) ownsClass(ctx echo.Context, classID int, verb string) (bool, string) {
	switch callerRole(ctx) {
	case school.RoleAdmin:
		return true, ""
	case school.RoleTeacher:
		cls, err := web.classSvc.GetClassDetail(ctx.Request().Context(), classID)
		if err != nil {
			return false, "Class not found"
		}
		if cls.Teacher.ID != callerProfileID(ctx) {
			return false, fmt.Sprintf("You can only %s your own classes.", verb)
		}
		return true, ""
	default:
		return false, fmt.Sprintf("Only teachers can %s classes.", verb)
	}
}

func summaries(classes []school.Class) []school.ClassSummary {
	out := make([]school.ClassSummary, 0, len(classes))
	for i := range classes {
		out = append(out, classes[i].Summary())
	}
	return out
}
