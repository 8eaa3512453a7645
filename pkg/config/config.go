package config

// DB selects and locates the account store.
type DB struct {
	// Driver is one of sqlite3 (cgo), sqlite (pure Go) or postgres.
	Driver       string `envconfig:"DRIVER" default:"sqlite3"`
	Url          string `envconfig:"URL" default:"finance.db"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"1"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[finance]"`
}

type App struct {
	Env string `envconfig:"APP_ENV" default:"development"`
	Log *Log   `envconfig:"LOG"`
	DB  *DB    `envconfig:"DATABASE"`
}

// IsDevelopment reports whether the app runs in the development environment.
func (a *App) IsDevelopment() bool {
	return a.Env == "development"
}
