package main

import (
	"StoryTutor/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/oauth2/google"
)

// Небольшая утилита: делает GET к Google TTS Voices и печатает голоса для языка озвучки,
// чтобы выбрать значение SPEECH_VOICE.
func main() {
	cfg := config.NewConfig()

	// Установим GOOGLE_APPLICATION_CREDENTIALS из конфига, если не задано в окружении.
	if os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") == "" && cfg.Speech.CredentialsPath != "" {
		_ = os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", cfg.Speech.CredentialsPath)
	}

	ctx, cancel := context.WithTimeoutCause(context.Background(), 15*time.Second, errors.New("google tts voices request timeout"))
	defer cancel()

	// Получим учётные данные по ADC и токен для вызова REST API.
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		fmt.Println("не удалось найти учётные данные Google (ADC):", err)
		os.Exit(1)
	}
	tok, err := creds.TokenSource.Token()
	if err != nil {
		fmt.Println("не удалось получить токен доступа Google:", err)
		os.Exit(1)
	}

	lang := cfg.Speech.Language
	if lang == "" {
		lang = "ru-RU"
	}
	endpoint := "https://texttospeech.googleapis.com/v1/voices?languageCode=" + url.QueryEscape(lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		fmt.Println("не удалось создать запрос:", err)
		os.Exit(1)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	hc := &http.Client{Timeout: 20 * time.Second}
	resp, err := hc.Do(req)
	if err != nil {
		fmt.Println("ошибка при выполнении запроса:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Google TTS Voices: status=%d\n", resp.StatusCode)
		os.Exit(1)
	}

	var payload struct {
		Voices []struct {
			Name                   string   `json:"name"`
			SsmlGender             string   `json:"ssmlGender"`
			LanguageCodes          []string `json:"languageCodes"`
			NaturalSampleRateHertz int      `json:"naturalSampleRateHertz"`
		} `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		fmt.Println("не удалось распарсить ответ Google TTS Voices:", err)
		os.Exit(1)
	}

	for _, v := range payload.Voices {
		marker := " "
		if v.Name == cfg.Speech.Voice {
			marker = "*"
		}
		fmt.Printf("%s %-28s %-7s %dHz\n", marker, v.Name, v.SsmlGender, v.NaturalSampleRateHertz)
	}
}
