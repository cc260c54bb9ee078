package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smilepoint/dental-clinic/internal/httperr"
	"github.com/smilepoint/dental-clinic/internal/httpresp"
	"github.com/smilepoint/dental-clinic/internal/imaging"
	"github.com/smilepoint/dental-clinic/internal/middleware"
	"github.com/smilepoint/dental-clinic/internal/session"
	"github.com/smilepoint/dental-clinic/internal/storage"
	ucIdentity "github.com/smilepoint/dental-clinic/internal/usecase/identity"

	identityDomain "github.com/smilepoint/dental-clinic/internal/domain/identity"
)

const maxImageUploadBytes = 5 << 20

type AuthHandler struct {
	sendCode       *ucIdentity.SendCode
	verifyCode     *ucIdentity.VerifyCode
	completeSignup *ucIdentity.CompleteSignup

	users    identityDomain.Repository
	sessions *session.Manager
	uploader *storage.Uploader
}

func NewAuthHandler(
	sendCode *ucIdentity.SendCode,
	verifyCode *ucIdentity.VerifyCode,
	completeSignup *ucIdentity.CompleteSignup,
	users identityDomain.Repository,
	sessions *session.Manager,
	uploader *storage.Uploader,
) *AuthHandler {
	return &AuthHandler{
		sendCode:       sendCode,
		verifyCode:     verifyCode,
		completeSignup: completeSignup,
		users:          users,
		sessions:       sessions,
		uploader:       uploader,
	}
}

// --------- Requests ---------

type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	OTP         string `json:"otp" binding:"required,len=6"`
	Mode        string `json:"mode" binding:"required,oneof=signin signup"`
}

type CompleteSignupRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

// --------- Handlers ---------

func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Phone number is required")
		return
	}

	if err := h.sendCode.Execute(c.Request.Context(), req.PhoneNumber); err != nil {
		httperr.Internal(c, "Failed to send OTP")
		return
	}

	httpresp.OK(c, gin.H{"success": true, "message": "OTP sent successfully"})
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to verify OTP")
		return
	}

	result, err := h.verifyCode.Execute(c.Request.Context(), req.PhoneNumber, req.OTP, req.Mode)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_code"):
			httperr.BadRequest(c, "Invalid or expired OTP")
		case httperr.IsBusiness(err, "no_account"):
			httperr.BadRequest(c, "No account found with this phone number")
		case httperr.IsBusiness(err, "account_exists"):
			httperr.BadRequest(c, "Account already exists with this phone number")
		case httperr.IsBusiness(err, "invalid_mode"):
			httperr.BadRequest(c, "Failed to verify OTP")
		default:
			httperr.Internal(c, "Failed to verify OTP")
		}
		return
	}

	h.setSessionCookie(c, result.Cookie)

	if result.NeedsDetails {
		httpresp.OK(c, gin.H{"success": true, "needsDetails": true})
		return
	}

	httpresp.OK(c, gin.H{"success": true, "user": result.User})
}

func (h *AuthHandler) CompleteSignup(c *gin.Context) {
	var req CompleteSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Failed to complete signup")
		return
	}

	cookie, _ := c.Cookie(session.CookieName)

	user, err := h.completeSignup.Execute(
		c.Request.Context(),
		cookie,
		ucIdentity.CompleteSignupInput{
			PhoneNumber: req.PhoneNumber,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       req.Email,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_signup_session"):
			httperr.BadRequest(c, "Invalid signup session")
		case httperr.IsBusiness(err, "invalid_email_domain"):
			httperr.BadRequest(c, "Valid email is required")
		case httperr.IsBusiness(err, identityDomain.ErrCodeDuplicateUser):
			httperr.BadRequest(c, "Account already exists with this phone number")
		default:
			httperr.Internal(c, "Failed to complete signup")
		}
		return
	}

	httpresp.OK(c, gin.H{"success": true, "user": user})
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "Failed to fetch user")
		return
	}

	httpresp.OK(c, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		if sid, _, err := h.sessions.Load(c.Request.Context(), cookie); err == nil {
			if err := h.sessions.Destroy(c.Request.Context(), sid); err != nil {
				httperr.Internal(c, "Failed to logout")
				return
			}
		}
	}

	h.clearSessionCookie(c)
	httpresp.OK(c, gin.H{"success": true})
}

// --------- Profile image ---------

func (h *AuthHandler) UploadProfileImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "Image uploads are not configured")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "Image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageUploadBytes))
	if err != nil {
		httperr.Internal(c, "Failed to read image")
		return
	}

	encoded, err := imaging.Process(data)
	if err != nil {
		httperr.BadRequest(c, "Unsupported image format")
		return
	}

	key := fmt.Sprintf("profile-images/%d.webp", userID)
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "Failed to upload image")
		return
	}

	if err := h.users.UpdateProfileImage(c.Request.Context(), userID, url); err != nil {
		httperr.Internal(c, "Failed to update profile")
		return
	}

	httpresp.OK(c, gin.H{"success": true, "profileImageUrl": url})
}

// --------- Cookies ---------

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		session.CookieName,
		value,
		int((7 * 24 * time.Hour).Seconds()),
		"/",
		"",
		false,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
}
