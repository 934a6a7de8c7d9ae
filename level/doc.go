/*
Package level defines the fixed severity scale used by weblog loggers.

The scale is closed and ordered: Off, Error, Warning, Info, Debug and Trace,
ranked 0 through 5. A higher rank is more verbose. Entries always carry one of
the five ranks from Error to Trace; Off is only ever a threshold.
*/
package level
