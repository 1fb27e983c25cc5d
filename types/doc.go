/*
Package types defines netsweep's information model. Which is rather simple and
mainly revolves around [Target] values and the probing [Verdict] of target
addresses. A Target is a single address (or address:port endpoint) within the
swept address space, and its Verdict tells how far along probing it is and how
the probe turned out.

# Extending Target

Depending on how netsweep gets integrated into other applications, there might
be the need to add application-specific information to targets as they travel
through the sweeping pipeline. Basically, the sweep engine accepts and emits
anything that satisfies the [Target] interface.

In case an implementation chooses to embed [TargetValue] into its own type, it
is essential to (re)implement the [TargetValue.WithVerdict] method. Failing to
do so will cause the embedded TargetValue.WithVerdict method to be promoted to
the new type, yet it won't return the proper new type, but instead only a stock
TargetValue, loosing the additional information in the process.

# Design Rationale

The seemingly peculiar separation into a [Target] interface as well as a
[TargetValue] struct type is necessary in order to allow polymorphism: probers
and the sweep engine don't care about the concrete structural type as long as
it looks and smells like a target by supporting the expected interface.

Please keep in mind that netsweep is inherently concurrent wherever possible:
probing lots of addresses is carried out concurrently. As we're passing
interface pointers around through channels, we need to bake in value semantics
and immutability through a careful [Target] interface design offering only
getters. This not only avoids a locking mess, but also tons of subtle bugs.
The price to pay is the ugly interface/struct types schism.
*/
package types
