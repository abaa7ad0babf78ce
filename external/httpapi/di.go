package httpapi

import (
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/config"
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/dialogue"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		engine := do.MustInvoke[*dialogue.Engine](i)
		return NewServer(cfg, engine), nil
	})
}
