package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go-laundry-management/helpers"
	"go-laundry-management/models"
	"go-laundry-management/repositories"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type UserController struct {
	users repositories.UserRepository
	guard *helpers.AccessGuard
}

func NewUserController(users repositories.UserRepository, guard *helpers.AccessGuard) *UserController {
	return &UserController{users: users, guard: guard}
}

// SignUp registers a new customer profile. The password is stored as a
// bcrypt hash only.
func (uc *UserController) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user.Role = "customer"
		if validationErr := validate.Struct(&user); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := uc.users.CountByEmail(ctx, *user.Email)
		if err != nil {
			log.Println("count users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}

		password := HashPassword(*user.Password)
		user.Password = &password
		user.Created_at = time.Now()
		user.Updated_at = user.Created_at
		user.ID = primitive.NewObjectID()
		user.User_id = user.ID.Hex()

		token, refreshToken, err := helpers.GenerateAllTokens(*user.Email, *user.Name, user.User_id)
		if err != nil {
			log.Println("generate tokens:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
			return
		}
		user.Token = &token
		user.Refresh_token = &refreshToken

		if err := uc.users.Insert(ctx, user); err != nil {
			log.Println("insert user:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user was not created"})
			return
		}

		user.Password = nil
		c.JSON(http.StatusCreated, user)
	}
}

// Login verifies credentials and reissues the token pair. The response
// carries the resolved role so the client knows which page to land on.
func (uc *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var credentials struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		}
		if err := c.BindJSON(&credentials); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&credentials); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		foundUser, err := uc.users.FindByEmail(ctx, credentials.Email)
		if err != nil {
			if errors.Is(err, repositories.ErrNoDocument) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is incorrect"})
				return
			}
			log.Println("find user:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
			return
		}

		// A profile document missing required fields is rejected, not trusted.
		if foundUser.Password == nil || foundUser.Email == nil || foundUser.Name == nil {
			log.Println("user document missing required fields:", foundUser.User_id)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is incorrect"})
			return
		}

		if valid, msg := VerifyPassword(credentials.Password, *foundUser.Password); !valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(*foundUser.Email, *foundUser.Name, foundUser.User_id)
		if err != nil {
			log.Println("generate tokens:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
			return
		}
		if err := uc.users.UpdateTokens(ctx, foundUser.User_id, token, refreshToken); err != nil {
			log.Println("update tokens:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
			return
		}

		foundUser.Password = nil
		foundUser.Token = &token
		foundUser.Refresh_token = &refreshToken
		c.JSON(http.StatusOK, gin.H{
			"user": foundUser,
			"role": uc.guard.ResolveRole(foundUser.User_id).String(),
		})
	}
}

// GetMe returns the logged-in user's own profile.
func (uc *UserController) GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		user, err := uc.users.FindByID(ctx, c.GetString("uid"))
		if err != nil {
			if errors.Is(err, repositories.ErrNoDocument) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			log.Println("find user:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again later"})
			return
		}
		user.Password = nil
		user.Token = nil
		user.Refresh_token = nil
		c.JSON(http.StatusOK, user)
	}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, hashedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(userPassword)); err != nil {
		return false, "email or password is incorrect"
	}
	return true, ""
}
