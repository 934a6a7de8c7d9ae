/*
Package registry maps logger names to logger instances.

A Registry is an ordinary value: construct one at start-up and pass it to the
code that needs to look loggers up. Every logger it creates shares the
registry's Store, Console and Metrics.

NewHost builds a Registry wired to the host runtime: entries persist through the
kvstore capability, Print goes to the logging capability and activity is
counted through the metrics capability.
*/
package registry
