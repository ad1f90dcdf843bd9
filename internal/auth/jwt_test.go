package auth

import (
	"testing"

	"yemekhane-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "test-secret-en-az-otuz-iki-karakter!"
	studentID := uint(42)
	user := &models.User{
		ID:    7,
		Email: "ogrenci@yurt.edu.tr",
		Role:  models.RoleStudent,
	}

	tokenStr, err := GenerateToken(secret, user, &studentID)
	if err != nil {
		t.Fatalf("token üretilemedi: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token doğrulanamadı: %v", err)
	}

	claims, ok := token.Claims.(*JWTCustomClaims)
	if !ok {
		t.Fatal("claims çözümlenemedi")
	}
	if claims.UserID != 7 {
		t.Errorf("UserID 7 bekleniyordu, %d geldi", claims.UserID)
	}
	if claims.Email != "ogrenci@yurt.edu.tr" {
		t.Errorf("email eşleşmedi: %s", claims.Email)
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("rol student bekleniyordu, %s geldi", claims.Role)
	}
	if claims.StudentID == nil || *claims.StudentID != 42 {
		t.Errorf("StudentID 42 bekleniyordu, %v geldi", claims.StudentID)
	}
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	user := &models.User{
		ID:    1,
		Email: "admin@yurt.edu.tr",
		Role:  models.RoleAdmin,
	}

	tokenStr, err := GenerateToken("dogru-secret-en-az-otuz-iki-karakter", user, nil)
	if err != nil {
		t.Fatalf("token üretilemedi: %v", err)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("yanlis-secret-en-az-otuz-iki-karakter"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("yanlış secret ile token geçerli sayılmamalıydı")
	}
}
