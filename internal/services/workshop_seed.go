package services

import (
	"log/slog"

	"github.com/unmillondepredicadores/backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedWorkshops inserts the fixed catalog if the table is empty. The catalog
// is reference data; it is never modified through the API.
func SeedWorkshops(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Workshop{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&defaultWorkshops).Error; err != nil {
		return err
	}
	slog.Info("workshop catalog seeded", "count", len(defaultWorkshops))
	return nil
}

var defaultWorkshops = []models.Workshop{
	// Fundamentos (1-3)
	{
		Title:           "Fundamentos de la Predicación",
		Description:     "Introducción a los principios básicos de la predicación bíblica expositiva",
		Content:         "Este taller cubre los fundamentos esenciales de la predicación bíblica. Aprenderás los principios básicos de la exposición bíblica, la importancia de la preparación espiritual del predicador, y cómo estructurar un mensaje que honre a Dios y edifique a la congregación. Objetivos: entender el llamado a la predicación, conocer los elementos básicos de un sermón, desarrollar una metodología de estudio bíblico y practicar la preparación espiritual.",
		SortOrder:       1,
		DurationMinutes: 45,
		Category:        "fundamentals",
		Resources:       datatypes.JSON(`["Biblia","Cuaderno de notas","Guía de estudio básico"]`),
	},
	{
		Title:           "El Corazón del Predicador",
		Description:     "Desarrollando la vida espiritual y el carácter del predicador",
		Content:         "Un predicador efectivo debe ser primero un discípulo fiel. Este taller se enfoca en el desarrollo del carácter cristiano, la vida devocional, y la integridad personal del predicador. Temas clave: la vida devocional del predicador, integridad y transparencia, manejo de las tentaciones del ministerio y crecimiento espiritual continuo.",
		SortOrder:       2,
		DurationMinutes: 50,
		Category:        "fundamentals",
		Resources:       datatypes.JSON(`["Diario espiritual","Plan de lectura bíblica"]`),
	},
	{
		Title:           "Hermenéutica Bíblica",
		Description:     "Principios de interpretación bíblica para predicadores",
		Content:         "Aprende los principios fundamentales para interpretar correctamente las Escrituras. Este taller te equipará con herramientas exegéticas básicas para extraer el significado correcto del texto bíblico. Contenido: principios básicos de hermenéutica, contexto histórico y cultural, géneros literarios bíblicos y aplicación práctica de principios interpretativos.",
		SortOrder:       3,
		DurationMinutes: 60,
		Category:        "fundamentals",
		Resources:       datatypes.JSON(`["Manual de hermenéutica","Diccionario bíblico"]`),
	},
	// Predicación (4-7)
	{
		Title:           "Estructura del Sermón",
		Description:     "Aprende a organizar tus sermones de manera efectiva y clara",
		Content:         "Un sermón bien estructurado facilita la comprensión y retención del mensaje. Aprenderás diferentes tipos de estructura sermonaria y cómo elegir la más apropiada para cada texto y ocasión. Estructuras que aprenderás: sermón expositivo, sermón temático, sermón textual, introducción y conclusión efectivas.",
		SortOrder:       4,
		DurationMinutes: 55,
		Category:        "preaching",
		Resources:       datatypes.JSON(`["Plantillas de sermón","Ejemplos prácticos"]`),
	},
	{
		Title:           "Comunicación Efectiva",
		Description:     "Técnicas de oratoria y comunicación para predicadores",
		Content:         "La comunicación efectiva es clave para transmitir el mensaje de Dios. Este taller cubre técnicas de oratoria, uso de la voz, lenguaje corporal, y cómo conectar con diferentes audiencias. Habilidades a desarrollar: proyección y modulación de la voz, lenguaje corporal efectivo, manejo del nerviosismo y conexión emocional con la audiencia.",
		SortOrder:       5,
		DurationMinutes: 40,
		Category:        "preaching",
		Resources:       datatypes.JSON(`["Ejercicios de voz","Video ejemplos"]`),
	},
	{
		Title:           "Uso de Ilustraciones",
		Description:     "Cómo usar ilustraciones efectivas en tus sermones",
		Content:         "Las ilustraciones ayudan a clarificar y aplicar la verdad bíblica. Aprende a seleccionar, adaptar y usar ilustraciones que refuercen tu mensaje sin distraer de la Palabra de Dios. Tipos de ilustraciones: historias personales, analogías y metáforas, ejemplos históricos e ilustraciones culturalmente relevantes.",
		SortOrder:       6,
		DurationMinutes: 35,
		Category:        "preaching",
		Resources:       datatypes.JSON(`["Banco de ilustraciones","Guía de selección"]`),
	},
	{
		Title:           "Predicación Expositiva",
		Description:     "Dominando el arte de la predicación expositiva verso por verso",
		Content:         "La predicación expositiva es el método más fiel para presentar la Palabra de Dios. Aprende a desarrollar sermones que sigan el flujo natural del texto bíblico y comuniquen el mensaje original del autor inspirado. Elementos clave: selección del texto bíblico, análisis del contexto, desarrollo de puntos principales y aplicación contemporánea.",
		SortOrder:       7,
		DurationMinutes: 65,
		Category:        "preaching",
		Resources:       datatypes.JSON(`["Guía de exposición","Ejemplos de sermones expositivos"]`),
	},
	// Liderazgo (8-14)
	{
		Title:           "Liderazgo Pastoral",
		Description:     "Fundamentos del liderazgo cristiano en el contexto pastoral",
		Content:         "El liderazgo pastoral requiere sabiduría, humildad y visión. Este taller explora los principios bíblicos del liderazgo y cómo aplicarlos en el ministerio pastoral contemporáneo. Principios de liderazgo: liderazgo de servicio, desarrollo de visión ministerial, toma de decisiones sabias y delegación efectiva.",
		SortOrder:       8,
		DurationMinutes: 50,
		Category:        "leadership",
		Resources:       datatypes.JSON(`["Manual de liderazgo","Casos de estudio"]`),
	},
	{
		Title:           "Formación de Discípulos",
		Description:     "Estrategias para formar discípulos comprometidos",
		Content:         "El llamado de Cristo es hacer discípulos. Aprende metodologías prácticas para formar discípulos maduros que se reproduzcan en otros. Estrategias incluidas: modelo de discipulado uno-a-uno, grupos pequeños efectivos, mentoreo espiritual y desarrollo de líderes.",
		SortOrder:       9,
		DurationMinutes: 45,
		Category:        "leadership",
		Resources:       datatypes.JSON(`["Plan de discipulado","Materiales de estudio"]`),
	},
	{
		Title:           "Administración de la Iglesia",
		Description:     "Principios de administración y gestión ministerial",
		Content:         "Una iglesia bien administrada puede enfocarse mejor en su misión. Aprende principios de administración que honren a Dios y sirvan efectivamente a la congregación. Áreas administrativas: planificación estratégica, gestión financiera básica, organización de ministerios y evaluación y mejora continua.",
		SortOrder:       10,
		DurationMinutes: 40,
		Category:        "leadership",
		Resources:       datatypes.JSON(`["Plantillas administrativas","Herramientas de planificación"]`),
	},
	{
		Title:           "Resolución de Conflictos",
		Description:     "Manejo bíblico de conflictos en la iglesia",
		Content:         "Los conflictos son inevitables en cualquier comunidad. Aprende principios bíblicos para manejar conflictos de manera constructiva y restaurativa. Habilidades a desarrollar: principios bíblicos de reconciliación, mediación efectiva, comunicación en crisis y restauración de relaciones.",
		SortOrder:       11,
		DurationMinutes: 55,
		Category:        "leadership",
		Resources:       datatypes.JSON(`["Manual de resolución","Casos prácticos"]`),
	},
	{
		Title:           "Desarrollo de Equipos",
		Description:     "Formando equipos ministeriales efectivos",
		Content:         "El ministerio es trabajo en equipo. Aprende a identificar, capacitar y coordinar equipos que multipliquen el impacto del ministerio. Elementos del desarrollo: identificación de dones espirituales, capacitación de voluntarios, coordinación de equipos y evaluación de desempeño.",
		SortOrder:       12,
		DurationMinutes: 45,
		Category:        "leadership",
		Resources:       datatypes.JSON(`["Test de dones","Manuales de capacitación"]`),
	},
	{
		Title:           "Visión y Planificación",
		Description:     "Desarrollando visión ministerial y planificación estratégica",
		Content:         "Sin visión, el pueblo se desenfrena. Aprende a desarrollar una visión clara para tu ministerio y crear planes estratégicos para alcanzarla. Proceso de planificación: desarrollo de declaración de misión, establecimiento de objetivos, creación de estrategias, implementación y seguimiento.",
		SortOrder:       13,
		DurationMinutes: 50,
		Category:        "leadership",
		Resources:       datatypes.JSON(`["Plantilla de visión","Herramientas de planificación"]`),
	},
	{
		Title:           "Multiplicación Ministerial",
		Description:     "Estrategias para multiplicar el ministerio y plantar iglesias",
		Content:         "El crecimiento del Reino requiere multiplicación. Explora estrategias para expandir el ministerio a través de plantación de iglesias y desarrollo de nuevos líderes. Aspectos de multiplicación: identificación de oportunidades, preparación de plantadores, apoyo a nuevas obras y sostenibilidad a largo plazo.",
		SortOrder:       14,
		DurationMinutes: 60,
		Category:        "leadership",
		Resources:       datatypes.JSON(`["Manual de plantación","Red de apoyo"]`),
	},
	// Cuidado pastoral (15-18)
	{
		Title:           "Consejería Pastoral",
		Description:     "Principios básicos de consejería bíblica pastoral",
		Content:         "Los pastores son llamados a cuidar las almas. Aprende principios fundamentales de consejería bíblica para ayudar a las personas en sus luchas espirituales y emocionales. Principios de consejería: escucha activa y empática, aplicación de principios bíblicos, identificación de problemas comunes y referencia a profesionales cuando sea necesario.",
		SortOrder:       15,
		DurationMinutes: 55,
		Category:        "pastoral",
		Resources:       datatypes.JSON(`["Manual de consejería","Recursos de apoyo"]`),
	},
	{
		Title:           "Cuidado de Familias",
		Description:     "Ministerio pastoral enfocado en fortalecer familias",
		Content:         "La familia es la unidad básica de la sociedad y la iglesia. Aprende estrategias efectivas para ministrar a familias y fortalecer los vínculos familiares según principios bíblicos. Áreas de ministerio familiar: consejería matrimonial básica, orientación para padres, ministerio con adolescentes y sanidad de relaciones familiares.",
		SortOrder:       16,
		DurationMinutes: 50,
		Category:        "pastoral",
		Resources:       datatypes.JSON(`["Materiales familiares","Programas de apoyo"]`),
	},
	{
		Title:           "Cuidado en Crisis",
		Description:     "Ministerio pastoral durante tiempos de crisis y dolor",
		Content:         "Las crisis son oportunidades para demostrar el amor de Cristo. Aprende a ministrar efectivamente durante tiempos de enfermedad, muerte, pérdida y otras crisis de la vida. Ministerio en crisis: presencia pastoral significativa, palabras de consuelo apropiadas, apoyo práctico y espiritual, acompañamiento en el duelo.",
		SortOrder:       17,
		DurationMinutes: 45,
		Category:        "pastoral",
		Resources:       datatypes.JSON(`["Guía de crisis","Recursos de duelo"]`),
	},
	{
		Title:           "Visitación Pastoral",
		Description:     "El arte de la visitación pastoral efectiva",
		Content:         "La visitación pastoral es una disciplina fundamental del ministerio. Aprende cómo hacer visitas pastorales significativas que fortalezcan la fe y profundicen las relaciones. Elementos de visitación: planificación de visitas, conversación pastoral efectiva, oración y ministración, seguimiento apropiado.",
		SortOrder:       18,
		DurationMinutes: 40,
		Category:        "pastoral",
		Resources:       datatypes.JSON(`["Guía de visitación","Registro pastoral"]`),
	},
	// Evangelismo (19-21)
	{
		Title:           "Evangelismo Personal",
		Description:     "Compartiendo el evangelio de manera personal y efectiva",
		Content:         "Todo cristiano es llamado a ser testigo. Aprende métodos prácticos para compartir el evangelio de manera natural y efectiva en conversaciones cotidianas. Estrategias evangelísticas: construcción de relaciones auténticas, presentación clara del evangelio, manejo de objeciones comunes y seguimiento de nuevos convertidos.",
		SortOrder:       19,
		DurationMinutes: 50,
		Category:        "evangelism",
		Resources:       datatypes.JSON(`["Guía evangelística","Tratados y recursos"]`),
	},
	{
		Title:           "Evangelismo Masivo",
		Description:     "Organización y ejecución de campañas evangelísticas",
		Content:         "Las campañas evangelísticas pueden alcanzar multitudes para Cristo. Aprende a planificar, organizar y ejecutar eventos evangelísticos efectivos en tu comunidad. Planificación de campañas: desarrollo de estrategia, organización de equipos, promoción y publicidad, seguimiento de decisiones.",
		SortOrder:       20,
		DurationMinutes: 55,
		Category:        "evangelism",
		Resources:       datatypes.JSON(`["Manual de campañas","Materiales promocionales"]`),
	},
	{
		Title:           "Misiones y Alcance",
		Description:     "Desarrollando una visión misionera local y global",
		Content:         "La iglesia existe para la misión. Aprende a desarrollar una cultura misionera en tu congregación que alcance tanto a la comunidad local como a los confines de la tierra. Componentes misioneros: visión misionera bíblica, desarrollo de programas de alcance, apoyo a misioneros y participación en la Gran Comisión.",
		SortOrder:       21,
		DurationMinutes: 60,
		Category:        "evangelism",
		Resources:       datatypes.JSON(`["Manual misionero","Contactos ministeriales"]`),
	},
}
