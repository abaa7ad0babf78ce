package dialogue

import (
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/config"
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/pricing"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewStore(cfg.SessionRetention()), nil
	})
	do.Provide(injector, func(i do.Injector) (*Engine, error) {
		store := do.MustInvoke[*Store](i)
		prices := do.MustInvoke[pricing.Lookup](i)
		return NewEngine(store, prices), nil
	})
}
