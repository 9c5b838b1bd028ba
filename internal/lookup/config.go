package lookup

import (
	"time"
)

type Config struct {
	CustomerServiceURL string        `envconfig:"CUSTOMER_SERVICE_URL" default:"http://localhost:8081"`
	AccountServiceURL  string        `envconfig:"ACCOUNT_SERVICE_URL" default:"http://localhost:8082"`
	Timeout            time.Duration `envconfig:"LOOKUP_TIMEOUT" default:"5s"`
}
