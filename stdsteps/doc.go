// Package stdsteps provides ready-made producers for common configuration
// sections: KV (map building), Counter (int arithmetic), Path and Logger
// (stock collaborators other sections reference by key), and Env
// (environment snapshots). Each is a producer.Factory, so registration is
// one line:
//
//	reg := producer.NewRegistry()
//	reg.Register("params", stdsteps.KV)
//	e := engine.Engine{Producers: reg, Defaults: stdsteps.StandardDefaults()}
package stdsteps
