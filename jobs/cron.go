package jobs

import (
	"context"
	"log"

	"portalubs/utils"

	"github.com/robfig/cron/v3"
)

// LimpadorChecks define a limpeza periódica dos checks fora da retenção
type LimpadorChecks interface {
	PurgarChecksAntigos(ctx context.Context) (int64, error)
}

var limpadorChecks LimpadorChecks

// SetLimpadorChecks define a implementação usada pelo cron
func SetLimpadorChecks(l LimpadorChecks) {
	limpadorChecks = l
}

// InitCronJobs agenda os jobs diários
func InitCronJobs(c *cron.Cron) error {
	// Limpeza roda de madrugada; o corte é sempre anterior a hoje, então o
	// job é seguro junto com o tráfego normal de leitura/escrita
	_, err := c.AddFunc("30 0 * * *", func() {
		if limpadorChecks == nil {
			utils.LogError("LimpadorChecks não configurado")
			return
		}
		removidos, err := limpadorChecks.PurgarChecksAntigos(context.Background())
		if err != nil {
			utils.LogError("Erro na limpeza de checks antigos: %v", err)
			return
		}
		utils.LogInfo("Limpeza de checks concluída: %d registros removidos", removidos)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs inicializados")
	return nil
}
