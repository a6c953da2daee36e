package response

import "github.com/fishmasters/fishmasters-api/internal/domain"

type LoginResponse struct {
	Token  string        `json:"token"`
	Fisher domain.Fisher `json:"fisher"`
}
