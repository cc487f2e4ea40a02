package auth

import (
	"context"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	XMemberIDHeader   = "X-Member-Id"
	XMemberRoleHeader = "X-Member-Role"

	RoleStaff  = "staff"
	RoleMember = "member"
)

var ErrNoIdentity = errors.New("member identity is missing")

type Profile struct {
	MemberID int64  `json:"member_id"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, memberID int64, role string) context.Context {
	return context.WithValue(ctx, ctxKey{}, Profile{MemberID: memberID, Role: role})
}

func FromContext(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(ctxKey{}).(Profile)
	if !ok || p.MemberID == 0 {
		return Profile{}, ErrNoIdentity
	}
	return p, nil
}

func (p Profile) IsStaff() bool {
	return p.Role == RoleStaff
}

func ParseMemberID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid member id %q", s)
	}
	return id, nil
}
