package config

import (
	"mobilia.GO/cron/jobs"
)

// CronJob pairs a schedule with its job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"catalogexportjob": {Schedule: "0 * * * *", Job: jobs.CatalogExportJob},
	"cartprunejob":     {Schedule: "30 3 * * *", Job: jobs.CartPruneJob},
	// Add more jobs here
}
