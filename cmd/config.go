package cmd

type Config struct {
	HTTPPort            string
	PortalBaseURL       string
	BoundaryFile        string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	KafkaHost           string
	KafkaConsumerGroup  string
	KafkaPositionTopic  string
	BoundaryRefreshCron string
	CatalogRefreshCron  string
}
