package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/orderdeck/orderdeck/internal/domain/entity"
)

// JSON views for entities whose wire shape differs from storage shape
// (password hashes never leave the service).

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"emailVerified": u.EmailVerified,
		"accountId":     u.AccountID,
		"createdAt":     u.CreatedAt,
		"updatedAt":     u.UpdatedAt,
	}
}

func accountView(a *entity.Account) gin.H {
	if a == nil {
		return nil
	}
	return gin.H{
		"id":        a.ID,
		"name":      a.Name,
		"ownerId":   a.OwnerID,
		"createdAt": a.CreatedAt,
		"updatedAt": a.UpdatedAt,
	}
}

func memberViews(ms []entity.Member) []gin.H {
	out := make([]gin.H, 0, len(ms))
	for _, m := range ms {
		out = append(out, gin.H{
			"id":            m.ID,
			"name":          m.Name,
			"email":         m.Email,
			"emailVerified": m.EmailVerified,
		})
	}
	return out
}
