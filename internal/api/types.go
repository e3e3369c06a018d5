package api

import "io"

// MaxWorkPhotos is the portfolio cap enforced by the service and mirrored
// client-side before any upload is attempted.
const MaxWorkPhotos = 5

// User is the authenticated account identity returned by login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Photographer is the public directory representation of one photographer.
// The same shape is returned for the caller's own profile.
type Photographer struct {
	ID              string   `json:"id"`
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	PhotographyType string   `json:"photography_type"`
	City            string   `json:"city"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	WorkPhotos      []string `json:"work_photos"`
	ContactNumber   string   `json:"contact_number"`
	Available       bool     `json:"available"`
	CreatedAt       string   `json:"created_at"`
}

// SignupRequest is the request for registering a new photographer account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request for authenticating an account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the response from a successful login.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// ProfileParams carries the editable profile fields for create and update.
type ProfileParams struct {
	PhotographyType string   `json:"photography_type"`
	City            string   `json:"city"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	ContactNumber   string   `json:"contact_number"`
	Available       bool     `json:"available"`
}

// Upload is one file staged for a portfolio upload.
type Upload struct {
	Name   string
	Reader io.Reader
}

// API response wrappers

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type uploadResponse struct {
	Message  string   `json:"message"`
	FileURLs []string `json:"file_urls"`
}
