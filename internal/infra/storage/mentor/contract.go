package mentor

import (
	"github.com/PraveenKumar22C/mentor-connect/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
