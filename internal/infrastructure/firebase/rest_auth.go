package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// The Admin SDK cannot verify a password, so email/password sign-in
// goes through the Identity Toolkit REST API with the web API key.

const (
	signInEndpoint  = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"
	refreshEndpoint = "https://securetoken.googleapis.com/v1/token"
)

var restClient = &http.Client{Timeout: 10 * time.Second}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for an ID token and a
// refresh token.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase api key is not configured")
	}

	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", "", err
	}

	resp, err := restClient.Post(signInEndpoint+"?key="+url.QueryEscape(f.apiKey), "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	var result signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", err
	}

	if result.Error != nil {
		return "", "", fmt.Errorf("sign in failed: %s", result.Error.Message)
	}
	if result.IDToken == "" {
		return "", "", fmt.Errorf("sign in failed: empty token response")
	}

	return result.IDToken, result.RefreshToken, nil
}

// RefreshIDToken exchanges a refresh token for a fresh ID token.
func (f *FirebaseAuthClient) RefreshIDToken(refreshToken string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase api key is not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	resp, err := restClient.Post(refreshEndpoint+"?key="+url.QueryEscape(f.apiKey), "application/x-www-form-urlencoded", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	var result refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", err
	}

	if result.Error != nil {
		return "", "", fmt.Errorf("token refresh failed: %s", result.Error.Message)
	}
	if result.IDToken == "" {
		return "", "", fmt.Errorf("token refresh failed: empty token response")
	}

	return result.IDToken, result.RefreshToken, nil
}
