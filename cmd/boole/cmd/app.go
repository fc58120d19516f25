package cmd

import (
	"io"
	"strings"

	"github.com/fatih/color"
	mdwerror "github.com/msto63/boole/foundation/core/error"
	mdwlog "github.com/msto63/boole/foundation/core/log"
	mdwstringx "github.com/msto63/boole/foundation/utils/stringx"
	"github.com/msto63/boole/internal/boole/service"
	"github.com/msto63/boole/internal/boole/store"
	"github.com/msto63/boole/pkg/core/cache"
	"github.com/msto63/boole/pkg/core/logging"
)

var (
	trueColor  = color.New(color.FgGreen, color.Bold)
	falseColor = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgYellow)
)

// newService wires engine, cache and history store from the configuration
func (a *app) newService() (*service.Service, error) {
	st, err := a.openStore()
	if err != nil {
		return nil, err
	}

	cacheCfg := cache.DefaultConfig()
	cacheCfg.MaxItems = a.cfg.Cache.MaxItems
	cacheCfg.TTL = a.cfg.Cache.TTL.Duration

	svc, err := service.New(service.Config{
		MaxExpressionLength: a.cfg.Logic.MaxExpressionLength,
		MaxVariables:        a.cfg.Logic.MaxVariables,
		Cache:               cache.NewResultCache(cacheCfg),
		Store:               st,
		Logger:              logging.Wrap(a.logger, "service"),
	})
	if err != nil {
		st.Close()
		return nil, err
	}
	return svc, nil
}

// openStore returns the SQLite store when enabled, else an in-memory one
func (a *app) openStore() (store.Store, error) {
	if !a.cfg.Store.Enabled || a.cfg.Store.Type == "memory" {
		return store.NewMemoryStore(store.DefaultMemoryCapacity), nil
	}

	st, err := store.NewSQLiteStore(store.SQLiteConfig{Path: a.cfg.Store.Path})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("History store opened", mdwlog.Fields{"path": st.Path()})
	return st, nil
}

// expressionArg joins args into one expression; "-" or no args reads stdin
func expressionArg(args []string) (string, error) {
	var expr string
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		expr = strings.TrimSpace(string(data))
	} else {
		expr = strings.Join(args, " ")
	}

	if mdwstringx.IsBlank(expr) {
		return "", mdwerror.New("no expression given").WithCode(mdwerror.CodeInvalidInput)
	}
	return service.NormalizeSymbols(expr), nil
}

func formatBool(v bool) string {
	if v {
		return trueColor.Sprint("true")
	}
	return falseColor.Sprint("false")
}
