package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vyaas/pkg/auth/controller"
	"vyaas/pkg/middleware"
	"vyaas/pkg/navigation"
	"vyaas/pkg/session"
)

// No OTP is ever sent; any six digits verify.

var validate = validator.New()

type loginRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type signupRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

type verifyRequest struct {
	OTP string `json:"otp" validate:"required,len=6,number"`
}

type authCtrl struct{ log *zap.Logger }

func NewAuthController(log *zap.Logger) controller.AuthController { return &authCtrl{log: log} }

// bindValid binds and validates req. When ok is false the
// error response has been written.
func bindValid[T any](c echo.Context, req *T) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := validate.Struct(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return true, nil
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	s := middleware.SessionFrom(c)
	s.AwaitOTP(strings.TrimSpace(req.Phone))
	h.log.Info("otp requested", zap.String("session", s.ID), zap.String("flow", "login"))
	return c.JSON(http.StatusAccepted, map[string]string{"next": "otp", "phone": s.PendingPhone()})
}

func (h *authCtrl) Signup(c echo.Context) error {
	var req signupRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	s := middleware.SessionFrom(c)
	s.AwaitOTP(strings.TrimSpace(req.Phone))
	h.log.Info("otp requested", zap.String("session", s.ID), zap.String("flow", "signup"))
	return c.JSON(http.StatusAccepted, map[string]string{"next": "otp", "phone": s.PendingPhone()})
}

func (h *authCtrl) Verify(c echo.Context) error {
	var req verifyRequest
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	s := middleware.SessionFrom(c)
	if s.PendingPhone() == "" {
		return c.JSON(http.StatusConflict, map[string]string{"error": "no verification pending"})
	}
	s.Verified()
	h.log.Info("session verified", zap.String("session", s.ID))
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *authCtrl) Demo(c echo.Context) error {
	s := middleware.SessionFrom(c)
	s.EnterDemo()
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *authCtrl) SignOut(c echo.Context) error {
	s := middleware.SessionFrom(c)
	s.SignOut()
	h.log.Info("session signed out", zap.String("session", s.ID))
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *authCtrl) CompleteOnboarding(c echo.Context) error {
	s := middleware.SessionFrom(c)
	s.CompleteOnboarding()
	return c.JSON(http.StatusOK, s.Snapshot())
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.SessionFrom(c).Snapshot())
}

func (h *authCtrl) SetLanguage(c echo.Context) error {
	var body struct {
		Language string `json:"language"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s := middleware.SessionFrom(c)
	if err := s.SetLanguage(body.Language); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error(), "supported": session.Languages})
	}
	return c.JSON(http.StatusOK, map[string]string{"language": s.Language()})
}

func (h *authCtrl) CurrentTab(c echo.Context) error {
	s := middleware.SessionFrom(c)
	return c.JSON(http.StatusOK, map[string]any{"tab": s.Tab(), "tabs": navigation.Tabs})
}

func (h *authCtrl) Navigate(c echo.Context) error {
	var ev navigation.Event
	if err := c.Bind(&ev); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	tab, err := middleware.SessionFrom(c).Navigate(ev)
	switch {
	case errors.Is(err, navigation.ErrAuthRequired):
		return middleware.AuthRequired(c)
	case err != nil:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"tab": tab})
}
