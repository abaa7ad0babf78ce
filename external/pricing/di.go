package pricing

import (
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/config"
	"github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/pricing"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (pricing.Lookup, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewRegistry(cfg)
	})
}
