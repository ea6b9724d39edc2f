// Package graphql exposes the user operations over a single POST
// endpoint. It dispatches on the document's top-level field and shapes
// the data/errors envelope; it is not a general GraphQL executor.
package graphql

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-tenant-user-api/internal/domain"
	"go-tenant-user-api/internal/service"
)

const timeLayout = "2006-01-02 15:04:05"

type Handler struct {
	mutations *service.UserService
	queries   *service.QueryService
	log       *zap.Logger
}

func NewHandler(mutations *service.UserService, queries *service.QueryService, log *zap.Logger) *Handler {
	return &Handler{mutations: mutations, queries: queries, log: log}
}

func (h *Handler) Register(g *gin.RouterGroup) {
	g.POST("/graphql", h.Serve)
}

func (h *Handler) Serve(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, Response{
			Data:   map[string]any{},
			Errors: []Error{newError("Syntax Error: invalid request body", Operation{Line: 1, Column: 1}, "graphql")},
		})
		return
	}

	op, err := topLevelField(req.Query)
	if err != nil {
		c.JSON(http.StatusOK, Response{
			Data:   map[string]any{},
			Errors: []Error{newError("Syntax Error: "+err.Error(), Operation{Line: 1, Column: 1}, "graphql")},
		})
		return
	}

	actorID := c.GetString("userId")
	vars := req.vars()

	switch op.Name {
	case "users":
		h.users(c, op, vars)
	case "user":
		h.user(c, op, vars)
	case "userCreate":
		h.userCreate(c, op, actorID, vars)
	case "userEdit":
		h.userEdit(c, op, actorID, vars)
	default:
		c.JSON(http.StatusOK, Response{
			Data:   map[string]any{},
			Errors: []Error{newError(`Cannot query field "`+op.Name+`".`, op, "graphql")},
		})
	}
}

func (h *Handler) users(c *gin.Context, op Operation, vars map[string]any) {
	page, err := h.queries.List(c.Request.Context(),
		strVar(vars, "name"),
		intVar(vars, "first", 10),
		intVar(vars, "page", 1),
	)
	if err != nil {
		h.fail(c, op, err)
		return
	}

	items := make([]userOut, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, projectUser(&u))
	}
	c.JSON(http.StatusOK, Response{Data: map[string]any{
		op.Name: gin.H{
			"paginatorInfo": newPaginatorInfo(page),
			"data":          items,
		},
	}})
}

func (h *Handler) user(c *gin.Context, op Operation, vars map[string]any) {
	u, err := h.queries.Get(c.Request.Context(), strVar(vars, "id"))
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, Response{Data: map[string]any{op.Name: projectUser(u)}})
}

func (h *Handler) userCreate(c *gin.Context, op Operation, actorID string, vars map[string]any) {
	u, err := h.mutations.Create(c.Request.Context(), actorID, service.CreateInput{
		Name:     strVar(vars, "name"),
		Email:    strVar(vars, "email"),
		Password: strVar(vars, "password"),
	})
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, Response{Data: map[string]any{op.Name: projectUser(u)}})
}

func (h *Handler) userEdit(c *gin.Context, op Operation, actorID string, vars map[string]any) {
	u, err := h.mutations.Edit(c.Request.Context(), actorID, service.EditInput{
		ID:       strVar(vars, "id"),
		Name:     strVar(vars, "name"),
		Email:    strVar(vars, "email"),
		Password: strVar(vars, "password"),
	})
	if err != nil {
		h.fail(c, op, err)
		return
	}
	c.JSON(http.StatusOK, Response{Data: map[string]any{op.Name: projectUser(u)}})
}

// fail keeps the operation key in data (null) next to the errors array;
// the HTTP status stays 200 for every failure class.
func (h *Handler) fail(c *gin.Context, op Operation, err error) {
	if !service.IsUnauthorized(err) && !service.IsNotFound(err) {
		if _, ok := err.(*service.ValidationError); !ok {
			h.log.Error("operation failed", zap.String("op", op.Name), zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, Response{
		Data:   map[string]any{op.Name: nil},
		Errors: []Error{mapError(err, op)},
	})
}

// userOut is the external user projection; the password never appears.
type userOut struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	EmailVerifiedAt *string `json:"emailVerifiedAt"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func projectUser(u *domain.User) userOut {
	out := userOut{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(timeLayout),
		UpdatedAt: u.UpdatedAt.Format(timeLayout),
	}
	if u.EmailVerifiedAt != nil {
		v := u.EmailVerifiedAt.Format(timeLayout)
		out.EmailVerifiedAt = &v
	}
	return out
}
