package metrics

// Provider define o contrato para envio de métricas.
// Isso permite trocar Datadog por outro backend (ou desligar tudo)
// sem alterar o transporte.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// Noop descarta todas as métricas; usado quando METRICS_ENABLED=false.
type Noop struct{}

func (Noop) Count(string, float64, []string) error     { return nil }
func (Noop) Histogram(string, float64, []string) error { return nil }
