package onboardingclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	authutils "hr-onboarding-board/lib/utils/auth-utils"
	apimodels "hr-onboarding-board/models/api"
	onboardingapimodels "hr-onboarding-board/models/api/onboarding"
	"io"
	"net/http"
	"strings"
)

type Provider interface {
	// GET {host}/onboarding
	ListOnboarding(ctx context.Context) ([]onboardingapimodels.OnboardingView, error)
}

var Instance Provider

func NewProvider(host, jwtSecret string, jwtExpireInSec int) {
	Instance = New(host, jwtSecret, jwtExpireInSec)
}

func New(host, jwtSecret string, jwtExpireInSec int) Provider {
	return &impl{
		host:           strings.TrimRight(host, "/"),
		jwtSecret:      jwtSecret,
		jwtExpireInSec: jwtExpireInSec,
		client:         &http.Client{},
	}
}

const (
	listPath    string = "%s/onboarding"
	serviceName string = "onboarding-api"
)

type impl struct {
	host           string
	jwtSecret      string
	jwtExpireInSec int
	client         *http.Client
}

type listResponse struct {
	Status  string                               `json:"status"`
	Message string                               `json:"message"`
	Data    []onboardingapimodels.OnboardingView `json:"data"`
}

func (i impl) ListOnboarding(ctx context.Context) ([]onboardingapimodels.OnboardingView, error) {
	uri := fmt.Sprintf(listPath, i.host)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования запроса")
	}
	logger := log.
		WithField("external_request", uri).
		WithField("service", serviceName)

	body, err := i.sendRequest(logger, r)
	if err != nil {
		return nil, err
	}
	return decodeList(logger, body)
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request) ([]byte, error) {
	r.Header.Add("Accept", "application/json")
	r.Header.Add("User-Agent", "HROnboardingBoard/1.0")
	if i.jwtSecret != "" {
		token, err := authutils.GetServiceToken(i.jwtSecret, i.jwtExpireInSec)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования токена")
		}
		r.Header.Add("Authorization", fmt.Sprintf("Bearer %v", token))
	}
	response, err := i.client.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в сервис онбординга")
		return nil, errors.Wrap(err, "ошибка отправки запроса в сервис онбординга")
	}
	defer response.Body.Close()
	// читаем Body только 1 раз
	responseBody, err := io.ReadAll(response.Body)
	logger = logger.WithField("response_status_code", response.StatusCode)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения ответа")
		return nil, errors.Wrap(err, "ошибка чтения ответа")
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.
			WithField("response_body", string(responseBody)).
			Error("Некорректный запрос в сервис онбординга")
		return nil, errors.Errorf("Некорректный запрос. Статус: %v", response.StatusCode)
	}
	return responseBody, nil
}

// принимаем как обертку apimodels.Response, так и голый массив
func decodeList(logger *log.Entry, body []byte) ([]onboardingapimodels.OnboardingView, error) {
	trimmed := bytes.TrimSpace(body)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var list []onboardingapimodels.OnboardingView
		if err := json.Unmarshal(trimmed, &list); err != nil {
			logger.WithError(err).Error("ошибка сериализации ответа")
			return nil, errors.Wrap(err, "ошибка сериализации ответа")
		}
		return list, nil
	}
	resp := listResponse{}
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		logger.WithError(err).Error("ошибка сериализации ответа")
		return nil, errors.Wrap(err, "ошибка сериализации ответа")
	}
	if resp.Status != apimodels.StatusSuccess {
		return nil, errors.Errorf("сервис онбординга вернул ошибку: %v", resp.Message)
	}
	if resp.Data == nil {
		return []onboardingapimodels.OnboardingView{}, nil
	}
	return resp.Data, nil
}
