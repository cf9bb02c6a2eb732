package api

import (
	"errors"
	"net/http"

	"SRP_admin_backend/internal/model"
	"SRP_admin_backend/internal/service"
	"SRP_admin_backend/pkg/auth"
	"SRP_admin_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type userRoutes struct {
	us service.UserServiceI
	a  *auth.AdminAuth
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI, a *auth.AdminAuth) {
	r := &userRoutes{us: us, a: a}
	h := handler.Group("/users")
	h.Use(a.AdminAuthMiddleware())
	{
		h.GET("", r.ListUsers)
		h.POST("", r.CreateUser)
		h.GET("/search", r.SearchUsers)
		h.POST("/demo", r.CreateDemoUser)
		h.GET("/:id", r.GetUser)
		h.PUT("/:id", r.UpdateUser)
		h.DELETE("/:id", r.DeleteUser)
		h.GET("/:id/referrals", r.GetUserReferrals)
	}
}

func (r *userRoutes) ListUsers(c *gin.Context) {
	log := logger.Logger()

	users, err := r.us.ListUsers(c.Request.Context())
	if err != nil {
		log.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": newUserResponses(users)})
}

func (r *userRoutes) GetUser(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := r.us.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error("failed to get user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

type CreateUserRequest struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Phone        *string `json:"phone"`
	ReferralCode string  `json:"referral_code"`
	ReferredBy   *string `json:"referred_by"`
}

func (r *userRoutes) CreateUser(c *gin.Context) {
	log := logger.Logger()

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := r.us.CreateUser(c.Request.Context(), &service.CreateUserInput{
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		ReferralCode: req.ReferralCode,
		ReferredBy:   req.ReferredBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmailExists),
			errors.Is(err, service.ErrReferralCodeExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Error("failed to create user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": newUserResponse(user)})
}

type UpdateUserRequest struct {
	Email           *string `json:"email"`
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	TotalPoints     *int    `json:"total_points"`
	AvailablePoints *int    `json:"available_points"`
}

func (r *userRoutes) UpdateUser(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := r.us.UpdateUser(c.Request.Context(), id, &model.UserUpdate{
		Email:           req.Email,
		Name:            req.Name,
		Phone:           req.Phone,
		TotalPoints:     req.TotalPoints,
		AvailablePoints: req.AvailablePoints,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoUpdateFields),
			errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, service.ErrEmailExists),
			errors.Is(err, service.ErrReferralCodeExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Error("failed to update user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(user)})
}

func (r *userRoutes) DeleteUser(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := r.us.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error("failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (r *userRoutes) SearchUsers(c *gin.Context) {
	log := logger.Logger()

	users, err := r.us.SearchUsers(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Error("failed to search users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": newUserResponses(users)})
}

func (r *userRoutes) GetUserReferrals(c *gin.Context) {
	log := logger.Logger()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	info, err := r.us.GetUserReferrals(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Error("failed to get user referrals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user referrals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":            newUserResponse(info.User),
		"referred_by":     newUserResponse(info.ReferredBy),
		"referred_users":  newUserResponses(info.ReferredUsers),
		"total_referrals": info.TotalReferrals,
	})
}

type DemoSubmissionRequest struct {
	TaskID    string  `json:"task_id"`
	Status    string  `json:"status"`
	ProofText *string `json:"proof_text"`
}

type DemoRedemptionRequest struct {
	PointsRequested int    `json:"points_requested"`
	Status          string `json:"status"`
}

type DemoPayoutRequest struct {
	Amount         float64 `json:"amount"`
	PointsRedeemed int     `json:"points_redeemed"`
	PaymentMethod  string  `json:"payment_method"`
	Status         string  `json:"status"`
}

type CreateDemoUserRequest struct {
	Email           string                  `json:"email"`
	Name            string                  `json:"name"`
	Phone           *string                 `json:"phone"`
	TotalPoints     int                     `json:"total_points"`
	AvailablePoints int                     `json:"available_points"`
	ReferralCode    string                  `json:"referral_code"`
	ReferredBy      *string                 `json:"referred_by"`
	ReferredUserIDs []string                `json:"referred_user_ids"`
	Submissions     []DemoSubmissionRequest `json:"submissions"`
	GenerateCerts   bool                    `json:"generate_certificates"`
	Redemptions     []DemoRedemptionRequest `json:"redemptions"`
	Payouts         []DemoPayoutRequest     `json:"payouts"`
}

func (r *userRoutes) CreateDemoUser(c *gin.Context) {
	log := logger.Logger()

	var req CreateDemoUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	input, err := demoInputFromRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := r.us.CreateDemoUser(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrEmailExists),
			errors.Is(err, service.ErrReferralCodeExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Error("failed to create demo user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create demo user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":         newUserResponse(data.User),
		"submissions":  len(data.Submissions),
		"certificates": len(data.Certificates),
		"redemptions":  len(data.Redemptions),
		"payouts":      len(data.Payouts),
		"referrals":    len(data.Referrals),
	})
}

func demoInputFromRequest(req *CreateDemoUserRequest) (*model.DemoUserInput, error) {
	input := &model.DemoUserInput{
		Email:                req.Email,
		Name:                 req.Name,
		Phone:                req.Phone,
		TotalPoints:          req.TotalPoints,
		AvailablePoints:      req.AvailablePoints,
		ReferralCode:         req.ReferralCode,
		GenerateCertificates: req.GenerateCerts,
	}

	if req.ReferredBy != nil && *req.ReferredBy != "" {
		id, err := uuid.Parse(*req.ReferredBy)
		if err != nil {
			return nil, errors.New("invalid referred_by")
		}
		input.ReferredBy = &id
	}

	for _, raw := range req.ReferredUserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid referred_user_ids")
		}
		input.ReferredUserIDs = append(input.ReferredUserIDs, id)
	}

	for _, s := range req.Submissions {
		taskID, err := uuid.Parse(s.TaskID)
		if err != nil {
			return nil, errors.New("invalid submission task_id")
		}
		input.Submissions = append(input.Submissions, model.DemoSubmission{
			TaskID:    taskID,
			Status:    model.SubmissionStatus(s.Status),
			ProofText: s.ProofText,
		})
	}

	for _, rd := range req.Redemptions {
		input.Redemptions = append(input.Redemptions, model.DemoRedemption{
			PointsRequested: rd.PointsRequested,
			Status:          model.RedeemStatus(rd.Status),
		})
	}

	for _, p := range req.Payouts {
		input.Payouts = append(input.Payouts, model.DemoPayout{
			Amount:         p.Amount,
			PointsRedeemed: p.PointsRedeemed,
			PaymentMethod:  model.PaymentMethod(p.PaymentMethod),
			Status:         model.PayoutStatus(p.Status),
		})
	}

	return input, nil
}
